// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DecodeTOML parses a TOML document into a Value tree. The document root
// is always a Table.
func DecodeTOML(data []byte) (*Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return FromAny(normalizeTOML(raw))
}

// normalizeTOML rewrites go-toml's local date/time types into time.Time
// so FromAny only has to know about one datetime shape. Local values have
// no offset; UTC is used as the neutral zone.
func normalizeTOML(raw any) any {
	switch x := raw.(type) {
	case toml.LocalDate:
		return x.AsTime(time.UTC)
	case toml.LocalDateTime:
		return x.AsTime(time.UTC)
	case toml.LocalTime:
		return time.Date(0, time.January, 1, x.Hour, x.Minute, x.Second, x.Nanosecond, time.UTC)
	case []any:
		for i, e := range x {
			x[i] = normalizeTOML(e)
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeTOML(e)
		}
		return x
	default:
		return raw
	}
}
