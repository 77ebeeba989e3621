// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/internal/config"
	"github.com/confdiff/confdiff/internal/meta"
	"github.com/confdiff/confdiff/internal/output"
	"github.com/confdiff/confdiff/internal/source"
	"github.com/confdiff/confdiff/internal/tui"
	"github.com/confdiff/confdiff/render"
	"github.com/confdiff/confdiff/value"
)

func diffCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two configuration documents",
		ArgsUsage: "OLD NEW",
		Description: "Compares OLD against NEW and reports every addition (+) and " +
			"deletion (-). Documents may be local files, - for stdin, or " +
			"s3://bucket/key URIs.",
		Flags:    NewDiffFlags("diff", m.Config.Source),
		Metadata: map[string]interface{}{"meta": m},
		Action:   diffCommandAction,
	}
}

// diffCommandAction is the action handler for the "diff" subcommand. It
// acquires and decodes both documents, runs the engine, and emits the
// result per common flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("diff takes exactly two documents, got %d", len(args))
	}

	oldDoc, err := loadDocument(ctx, cmd, args[0])
	if err != nil {
		return err
	}
	newDoc, err := loadDocument(ctx, cmd, args[1])
	if err != nil {
		return err
	}

	// NEW is the document compared to: its extra keys are additions.
	cs, err := diff.Diff(newDoc, oldDoc)
	if err != nil {
		return err
	}
	log.Debugf("changes computed: total=%d", cs.Len())

	if cmd.Bool("tui") {
		report, rerr := render.Text(output.Filter(cs, cmd.String("filter")))
		if rerr != nil {
			return rerr
		}
		title := fmt.Sprintf("confdiff %s %s", args[0], args[1])
		if err := tui.Show(title, report); err != nil {
			return err
		}
	} else if err := output.Spit(cmd, cs, nil); err != nil {
		return err
	}

	if cmd.Bool("exit-code") && cs.HasChanges() {
		return cli.Exit("", 1)
	}

	return nil
}

// loadDocument fetches, optionally decrypts, decodes and optionally
// drills into one document argument.
func loadDocument(ctx context.Context, cmd *cli.Command, raw string) (*value.Value, error) {
	loc, err := source.Parse(raw)
	if err != nil {
		return nil, err
	}

	data, err := source.Read(ctx, loc, source.Options{
		Profile:    cmd.String("profile"),
		Region:     cmd.String("region"),
		Passphrase: cmd.String("passphrase"),
	})
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(cmd.String("format"), loc, data)
	if err != nil {
		return nil, err
	}

	if path := cmd.String("path"); path != "" {
		doc, err = value.Lookup(doc, path)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// decodeDocument picks the decoder from the explicit --format flag or,
// failing that, the document's file extension. TOML is the default for
// extensionless input such as stdin.
func decodeDocument(format string, loc source.Location, data []byte) (*value.Value, error) {
	if format == "" {
		name := loc.Path
		if loc.Scheme == source.SchemeS3 {
			name = loc.Key
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".json":
			format = "json"
		case ".yaml", ".yml":
			format = "yaml"
		case ".hcl", ".tf":
			format = "hcl"
		default:
			format = "toml"
		}
	}

	switch format {
	case "json":
		return value.DecodeJSON(data)
	case "yaml":
		return value.DecodeYAML(data)
	case "hcl":
		return value.DecodeHCL(data, loc.String())
	default:
		return value.DecodeTOML(data)
	}
}
