// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document into a Value tree. YAML timestamps
// decode to Datetime values; null is rejected like everywhere else in
// the model.
func DecodeYAML(data []byte) (*Value, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return FromAny(raw)
}
