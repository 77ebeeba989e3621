// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"iter"

	"github.com/confdiff/confdiff/value"
)

// Op classifies one difference between two document trees.
type Op int

const (
	// OpSame marks a key present with an equal value in both documents.
	// Same entries never produce report output.
	OpSame Op = iota
	// OpAdded marks a value present only in the new document.
	OpAdded
	// OpDeleted marks a value present only in the old document.
	OpDeleted
	// OpChanged marks a value present in both documents with differing
	// kind or scalar content.
	OpChanged
)

// String returns the lowercase name of the op.
func (op Op) String() string {
	switch op {
	case OpSame:
		return "same"
	case OpAdded:
		return "added"
	case OpDeleted:
		return "deleted"
	case OpChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Change is one classified difference at one location. Path is the full
// path from the document root, dotted for table keys and bracket-indexed
// for array positions ("servers[2].host"). Old and New point into the
// two input trees; they are borrowed, never copied, so a Change must not
// outlive the documents it was computed from.
//
// Old is set for Same, Deleted and Changed; New for Same, Added and
// Changed.
type Change struct {
	Op   Op
	Path string
	Old  *value.Value
	New  *value.Value
}

// ChangeSet is the ordered result of one Diff call. Order is traversal
// discovery order: ascending key order within a table, ascending index
// within an array, and subtrees in the order they were discovered.
type ChangeSet struct {
	changes []Change
}

// Changes returns the ordered change records. Callers must not mutate
// the returned slice.
func (cs *ChangeSet) Changes() []Change { return cs.changes }

// Len returns the number of change records, Same entries included.
func (cs *ChangeSet) Len() int { return len(cs.changes) }

// At returns the i-th change record.
func (cs *ChangeSet) At(i int) Change { return cs.changes[i] }

// HasChanges reports whether any record is not a Same entry.
func (cs *ChangeSet) HasChanges() bool {
	for _, c := range cs.changes {
		if c.Op != OpSame {
			return true
		}
	}
	return false
}

// All iterates the change records in order.
func (cs *ChangeSet) All() iter.Seq[Change] {
	return func(yield func(Change) bool) {
		for _, c := range cs.changes {
			if !yield(c) {
				return
			}
		}
	}
}

func (cs *ChangeSet) add(c Change) { cs.changes = append(cs.changes, c) }

// NewChangeSet builds a ChangeSet from explicit records. Consumers that
// subset an engine result (filters, viewers) use this to stay in the
// ChangeSet shape.
func NewChangeSet(changes ...Change) *ChangeSet {
	return &ChangeSet{changes: changes}
}
