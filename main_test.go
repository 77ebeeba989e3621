// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"confdiff", "--version"}, true},
		{"short flag", []string{"confdiff", "-v"}, true},
		{"flag after command", []string{"confdiff", "diff", "--version"}, true},
		{"no flag", []string{"confdiff", "diff", "a.toml", "b.toml"}, false},
		{"bare", []string{"confdiff"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, handleVersion(tt.args))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	require.Equal(t,
		[]string{"confdiff", "--help"},
		handleNakedCommand([]string{"confdiff"}))

	args := []string{"confdiff", "diff", "a.toml", "b.toml"}
	require.Equal(t, args, handleNakedCommand(args))
}
