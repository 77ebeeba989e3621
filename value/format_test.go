// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"string", NewString("def"), `"def"`},
		{"string with quotes", NewString(`say "hi"`), `"say \"hi\""`},
		{"integer", NewInteger(42), "42"},
		{"negative integer", NewInteger(-7), "-7"},
		{"float keeps point", NewFloat(3), "3.0"},
		{"float fraction", NewFloat(0.25), "0.25"},
		{"inf", NewFloat(math.Inf(1)), "inf"},
		{"negative inf", NewFloat(math.Inf(-1)), "-inf"},
		{"nan", NewFloat(math.NaN()), "nan"},
		{"bool", NewBool(true), "true"},
		{
			"datetime",
			NewDatetime(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)),
			"1979-05-27T07:32:00Z",
		},
		{
			"array",
			NewArray(NewInteger(1), NewInteger(2), NewInteger(3)),
			"[1, 2, 3]",
		},
		{
			"nested array",
			NewArray(NewArray(NewInteger(1)), NewString("x")),
			`[[1], "x"]`,
		},
		{
			"table inside array",
			NewArray(NewTable(map[string]*Value{"b": NewInteger(2), "a": NewInteger(1)})),
			"[{ a = 1, b = 2 }]",
		},
		{"empty array", NewArray(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.v)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInvalidKind(t *testing.T) {
	_, err := Format(&Value{})
	require.ErrorContains(t, err, "invalid")

	_, err = Format(nil)
	require.Error(t, err)
}

func TestFormatDeterministic(t *testing.T) {
	v := NewArray(NewTable(map[string]*Value{"z": NewInteger(1), "a": NewInteger(2), "m": NewInteger(3)}))
	first, err := Format(v)
	require.NoError(t, err)
	for range 10 {
		again, err := Format(v)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
