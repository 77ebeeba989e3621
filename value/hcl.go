// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DecodeHCL parses an attribute-style HCL document into a Value tree.
// Attributes must be literal expressions (no variables or function
// calls); blocks become nested tables keyed by block type and label.
func DecodeHCL(data []byte, filename string) (*Value, error) {
	f, diags := hclsyntax.ParseConfig(data, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl: %w", diags)
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("decode hcl: unexpected body type %T", f.Body)
	}
	return fromBody(body)
}

func fromBody(body *hclsyntax.Body) (*Value, error) {
	entries := map[string]*Value{}

	for name, attr := range body.Attributes {
		cv, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("decode hcl: attribute %q: %w", name, diags)
		}
		v, err := fromCty(cv)
		if err != nil {
			return nil, fmt.Errorf("decode hcl: attribute %q: %w", name, err)
		}
		entries[name] = v
	}

	for _, block := range body.Blocks {
		nested, err := fromBody(block.Body)
		if err != nil {
			return nil, err
		}
		// Labeled blocks nest one table per label under the block type.
		for i := len(block.Labels) - 1; i >= 0; i-- {
			nested = NewTable(map[string]*Value{block.Labels[i]: nested})
		}

		if existing, ok := entries[block.Type]; ok && existing.Kind() == Table && nested.Kind() == Table {
			for k, v := range nested.m {
				existing.m[k] = v
			}
		} else {
			entries[block.Type] = nested
		}
	}

	return NewTable(entries), nil
}

func fromCty(cv cty.Value) (*Value, error) {
	if cv.IsNull() {
		return nil, fmt.Errorf("null values are not representable")
	}

	t := cv.Type()
	switch {
	case t == cty.String:
		return NewString(cv.AsString()), nil
	case t == cty.Bool:
		return NewBool(cv.True()), nil
	case t == cty.Number:
		bf := cv.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return NewInteger(i), nil
		}
		f, _ := bf.Float64()
		return NewFloat(f), nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var elems []*Value
		for it := cv.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			v, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return NewArray(elems...), nil
	case t.IsObjectType() || t.IsMapType():
		entries := map[string]*Value{}
		for it := cv.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			v, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			entries[kv.AsString()] = v
		}
		return NewTable(entries), nil
	default:
		return nil, fmt.Errorf("unsupported hcl type %s", t.FriendlyName())
	}
}
