// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/confdiff/confdiff/internal/config"
	"github.com/confdiff/confdiff/internal/meta"
)

// InitApp builds the CLI application. The subcommand name doubles as
// the namespace key for config lookups, so "diff.padding" in the config
// file wins over "padding".
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfg, _ := config.Load() //nolint
	if len(args) > 1 {
		cfg.Namespace = args[1]
	}

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "confdiff",
		Usage: "structural diff for configuration documents",
		// The default handler calls os.Exit from inside Run; exit codes
		// are mapped in main instead, so Run must return the error.
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "confdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		diffCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
