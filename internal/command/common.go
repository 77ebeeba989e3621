// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/confdiff/confdiff/internal/meta"
)

// GetMeta retrieves the runtime metadata attached to a command.
func GetMeta(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
