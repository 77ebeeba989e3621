// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
)

var (
	outputValues = []string{"text", "json", "yaml", "table"}
	formatValues = []string{"", "toml", "json", "yaml", "hcl"}
)

// OutputValidator rejects values not accepted by the --output flag.
func OutputValidator(value string) error {
	if slices.Contains(outputValues, value) {
		return nil
	}
	return fmt.Errorf("invalid output %q, want one of %v", value, outputValues)
}

// FormatValidator rejects values not accepted by the --format flag.
func FormatValidator(value string) error {
	if slices.Contains(formatValues, value) {
		return nil
	}
	return fmt.Errorf("invalid format %q, want one of toml, json, yaml, hcl", value)
}
