// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"sort"
	"time"
)

// Kind is the variant tag of a Value.
type Kind int

const (
	Invalid Kind = iota
	String
	Integer
	Float
	Bool
	Datetime
	Array
	Table
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Datetime:
		return "datetime"
	case Array:
		return "array"
	case Table:
		return "table"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed document tree: a scalar leaf, an ordered
// array, or a string-keyed table. A Value is immutable once constructed;
// consumers (the diff engine, renderers) only ever borrow it.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
	a    []*Value
	m    map[string]*Value
}

// NewString returns a string leaf.
func NewString(s string) *Value { return &Value{kind: String, s: s} }

// NewInteger returns an integer leaf.
func NewInteger(i int64) *Value { return &Value{kind: Integer, i: i} }

// NewFloat returns a float leaf.
func NewFloat(f float64) *Value { return &Value{kind: Float, f: f} }

// NewBool returns a boolean leaf.
func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

// NewDatetime returns a datetime leaf.
func NewDatetime(t time.Time) *Value { return &Value{kind: Datetime, t: t} }

// NewArray returns an array node wrapping elems. The slice is not copied.
func NewArray(elems ...*Value) *Value { return &Value{kind: Array, a: elems} }

// NewTable returns a table node wrapping entries. The map is not copied.
func NewTable(entries map[string]*Value) *Value {
	if entries == nil {
		entries = map[string]*Value{}
	}
	return &Value{kind: Table, m: entries}
}

// Kind returns the variant tag.
func (v *Value) Kind() Kind { return v.kind }

// Str returns the string payload. Valid only for String values.
func (v *Value) Str() string { return v.s }

// Int returns the integer payload. Valid only for Integer values.
func (v *Value) Int() int64 { return v.i }

// Flt returns the float payload. Valid only for Float values.
func (v *Value) Flt() float64 { return v.f }

// Boolean returns the bool payload. Valid only for Bool values.
func (v *Value) Boolean() bool { return v.b }

// Time returns the datetime payload. Valid only for Datetime values.
func (v *Value) Time() time.Time { return v.t }

// Items returns the elements of an Array value. Callers must not mutate
// the returned slice.
func (v *Value) Items() []*Value { return v.a }

// Entry returns the table entry for key, or nil.
func (v *Value) Entry(key string) *Value { return v.m[key] }

// Len returns the number of array elements or table entries.
func (v *Value) Len() int {
	if v.kind == Array {
		return len(v.a)
	}
	return len(v.m)
}

// Keys returns the table's keys in ascending lexicographic order. Table
// insertion order is irrelevant to comparison and rendering; sorted keys
// are the canonical order everywhere.
func (v *Value) Keys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports deep structural equality. Values of different kinds are
// never equal, even when their payloads would coincide (1 != 1.0). The
// comparison runs on an explicit work stack, so nesting depth is bounded
// by input size rather than call stack.
func (v *Value) Equal(o *Value) bool {
	type pair struct{ a, b *Value }

	stack := []pair{{v, o}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.kind != p.b.kind {
			return false
		}

		switch p.a.kind {
		case String:
			if p.a.s != p.b.s {
				return false
			}
		case Integer:
			if p.a.i != p.b.i {
				return false
			}
		case Float:
			if p.a.f != p.b.f {
				return false
			}
		case Bool:
			if p.a.b != p.b.b {
				return false
			}
		case Datetime:
			if !p.a.t.Equal(p.b.t) {
				return false
			}
		case Array:
			if len(p.a.a) != len(p.b.a) {
				return false
			}
			for i := range p.a.a {
				stack = append(stack, pair{p.a.a[i], p.b.a[i]})
			}
		case Table:
			if len(p.a.m) != len(p.b.m) {
				return false
			}
			for k, ve := range p.a.m {
				oe, ok := p.b.m[k]
				if !ok {
					return false
				}
				stack = append(stack, pair{ve, oe})
			}
		default:
			return false
		}
	}

	return true
}

// FromAny converts a generically-decoded document (the map/slice/scalar
// shapes produced by the TOML and YAML unmarshalers) into a Value tree.
func FromAny(raw any) (*Value, error) {
	switch x := raw.(type) {
	case string:
		return NewString(x), nil
	case bool:
		return NewBool(x), nil
	case int:
		return NewInteger(int64(x)), nil
	case int64:
		return NewInteger(x), nil
	case uint64:
		return NewInteger(int64(x)), nil
	case float64:
		return NewFloat(x), nil
	case float32:
		return NewFloat(float64(x)), nil
	case time.Time:
		return NewDatetime(x), nil
	case []any:
		elems := make([]*Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return NewArray(elems...), nil
	case map[string]any:
		entries := make(map[string]*Value, len(x))
		for k, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			entries[k] = v
		}
		return NewTable(entries), nil
	case map[any]any:
		entries := make(map[string]*Value, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported table key type %T", k)
			}
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			entries[ks] = v
		}
		return NewTable(entries), nil
	case nil:
		return nil, fmt.Errorf("null values are not representable")
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}
