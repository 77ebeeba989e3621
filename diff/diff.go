// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"fmt"

	"github.com/confdiff/confdiff/value"
)

// InvalidTopLevelError reports that a document root was not a table.
type InvalidTopLevelError struct {
	Side string
	Kind value.Kind
}

func (e *InvalidTopLevelError) Error() string {
	return fmt.Sprintf("%s document root must be a table, got %s", e.Side, e.Kind)
}

// frame is one pending subtree comparison: the new-side and old-side
// values rooted at the same path.
type frame struct {
	path string
	a    *value.Value // new side
	b    *value.Value // old side
}

// Diff compares two document trees and returns the ordered ChangeSet.
//
// The first argument is the new document: keys present only in newDoc
// are Added, keys present only in oldDoc are Deleted. Callers diffing
// "current vs previous" must pass (current, previous).
//
// Both roots must be tables. The walk is purely functional over the two
// immutable inputs; the returned ChangeSet borrows from both and must
// not outlive either.
func Diff(newDoc, oldDoc *value.Value) (*ChangeSet, error) {
	if newDoc == nil || newDoc.Kind() != value.Table {
		return nil, &InvalidTopLevelError{Side: "new", Kind: kindOf(newDoc)}
	}
	if oldDoc == nil || oldDoc.Kind() != value.Table {
		return nil, &InvalidTopLevelError{Side: "old", Kind: kindOf(oldDoc)}
	}

	cs := &ChangeSet{}

	// Nesting depth is caller-controlled, so the walk runs on an explicit
	// work stack instead of call recursion. Each pop either terminates a
	// branch or pushes strictly smaller subtrees, so the walk always
	// terminates.
	stack := []frame{{path: "", a: newDoc, b: oldDoc}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var pending []frame
		if fr.a.Kind() == value.Array {
			pending = diffArrays(cs, fr)
		} else {
			pending = diffTables(cs, fr)
		}

		// Pushed in reverse so the first-discovered subtree pops first,
		// keeping the ChangeSet in traversal discovery order.
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}

	return cs, nil
}

// diffTables merge-walks two tables over their sorted key sequences.
func diffTables(cs *ChangeSet, fr frame) (pending []frame) {
	ak := fr.a.Keys()
	bk := fr.b.Keys()

	var i, j int
	for i < len(ak) && j < len(bk) {
		switch {
		case ak[i] < bk[j]:
			// Keys are sorted ascending, so the lower key is missing from
			// the other table.
			cs.add(Change{Op: OpAdded, Path: keyPath(fr.path, ak[i]), New: fr.a.Entry(ak[i])})
			i++
		case ak[i] > bk[j]:
			cs.add(Change{Op: OpDeleted, Path: keyPath(fr.path, bk[j]), Old: fr.b.Entry(bk[j])})
			j++
		default:
			av := fr.a.Entry(ak[i])
			bv := fr.b.Entry(bk[j])
			path := keyPath(fr.path, ak[i])

			switch {
			case av.Equal(bv):
				cs.add(Change{Op: OpSame, Path: path, Old: bv, New: av})
			case av.Kind() == bv.Kind() && (av.Kind() == value.Table || av.Kind() == value.Array):
				pending = append(pending, frame{path: path, a: av, b: bv})
			default:
				// Kind mismatch, or same-kind scalars with different content.
				cs.add(Change{Op: OpChanged, Path: path, Old: bv, New: av})
			}
			i++
			j++
		}
	}

	for ; i < len(ak); i++ {
		cs.add(Change{Op: OpAdded, Path: keyPath(fr.path, ak[i]), New: fr.a.Entry(ak[i])})
	}
	for ; j < len(bk); j++ {
		cs.add(Change{Op: OpDeleted, Path: keyPath(fr.path, bk[j]), Old: fr.b.Entry(bk[j])})
	}

	return pending
}

// diffArrays zips two arrays positionally. No reordering or common-
// subsequence matching is attempted; an element only ever compares
// against the element at its own index.
func diffArrays(cs *ChangeSet, fr frame) (pending []frame) {
	ae := fr.a.Items()
	be := fr.b.Items()

	n := min(len(ae), len(be))
	for i := 0; i < n; i++ {
		av, bv := ae[i], be[i]
		if av.Equal(bv) {
			// Equal array elements emit nothing, not even Same.
			continue
		}

		path := indexPath(fr.path, i)
		if av.Kind() == bv.Kind() && (av.Kind() == value.Table || av.Kind() == value.Array) {
			pending = append(pending, frame{path: path, a: av, b: bv})
		} else {
			cs.add(Change{Op: OpChanged, Path: path, Old: bv, New: av})
		}
	}

	// Leftover trailing elements of the longer side.
	for i := n; i < len(ae); i++ {
		cs.add(Change{Op: OpAdded, Path: indexPath(fr.path, i), New: ae[i]})
	}
	for i := n; i < len(be); i++ {
		cs.add(Change{Op: OpDeleted, Path: indexPath(fr.path, i), Old: be[i]})
	}

	return pending
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func kindOf(v *value.Value) value.Kind {
	if v == nil {
		return value.Invalid
	}
	return v.Kind()
}
