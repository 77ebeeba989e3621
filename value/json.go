// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// DecodeJSON parses a JSON document into a Value tree. Numbers without a
// fraction or exponent become Integer values, everything else Float; the
// data model has no null, so null anywhere in the document is rejected.
func DecodeJSON(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode json: invalid document")
	}
	return fromResult(gjson.ParseBytes(data))
}

func fromResult(r gjson.Result) (*Value, error) {
	switch {
	case r.IsObject():
		entries := map[string]*Value{}
		var walkErr error
		r.ForEach(func(key, val gjson.Result) bool {
			v, err := fromResult(val)
			if err != nil {
				walkErr = err
				return false
			}
			entries[key.String()] = v
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return NewTable(entries), nil
	case r.IsArray():
		var elems []*Value
		var walkErr error
		r.ForEach(func(_, val gjson.Result) bool {
			v, err := fromResult(val)
			if err != nil {
				walkErr = err
				return false
			}
			elems = append(elems, v)
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return NewArray(elems...), nil
	}

	switch r.Type {
	case gjson.String:
		return NewString(r.String()), nil
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return NewFloat(r.Float()), nil
		}
		return NewInteger(r.Int()), nil
	case gjson.True:
		return NewBool(true), nil
	case gjson.False:
		return NewBool(false), nil
	default:
		return nil, fmt.Errorf("decode json: %s is not representable", r.Type)
	}
}
