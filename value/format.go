// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Format serializes a single value to its canonical TOML-flavored text
// form: quoted strings, bare numbers and booleans, RFC 3339 datetimes,
// inline arrays ([1, 2, 3]) and inline tables ({ a = 1 }). The output is
// deterministic: identical values always format to identical text.
//
// Formatting a Value with an invalid kind fails rather than emitting
// corrupted output.
func Format(v *Value) (string, error) {
	var b strings.Builder
	if err := format(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func format(b *strings.Builder, v *Value) error {
	if v == nil {
		return fmt.Errorf("cannot format nil value")
	}

	switch v.kind {
	case String:
		b.WriteString(strconv.Quote(v.s))
	case Integer:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case Float:
		b.WriteString(formatFloat(v.f))
	case Bool:
		b.WriteString(strconv.FormatBool(v.b))
	case Datetime:
		b.WriteString(formatTime(v.t))
	case Array:
		b.WriteByte('[')
		for i, e := range v.a {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := format(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case Table:
		// Tables only reach here nested inside arrays; section rendering
		// is the renderer's job.
		b.WriteString("{ ")
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(" = ")
			if err := format(b, v.m[k]); err != nil {
				return err
			}
		}
		b.WriteString(" }")
	default:
		return fmt.Errorf("cannot format value of kind %s", v.kind)
	}

	return nil
}

// formatFloat renders a float the way TOML writes it: always with a
// decimal point or exponent, and inf/nan spelled out.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.Nanosecond() != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(time.RFC3339)
}
