// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/internal/config"
	"github.com/confdiff/confdiff/internal/log"
	"github.com/confdiff/confdiff/render"
	"github.com/confdiff/confdiff/value"
)

// Row is the structured form of one change record used by the json,
// yaml and table emitters. Values are carried in their canonical text
// form.
type Row struct {
	Op   string `json:"op" yaml:"op"`
	Path string `json:"path" yaml:"path"`
	Old  string `json:"old,omitempty" yaml:"old,omitempty"`
	New  string `json:"new,omitempty" yaml:"new,omitempty"`
}

// Spit renders a ChangeSet to w according to command flags: --output
// selects text (default), json, yaml or table; --filter keeps only
// matching changes; --color enables styling. If w is nil, os.Stdout is
// used.
func Spit(cmd *cli.Command, cs *diff.ChangeSet, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		rows, err := buildRows(cmd, cs)
		if err != nil {
			return err
		}
		jsonOutput, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		rows, err := buildRows(cmd, cs)
		if err != nil {
			return err
		}
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}
		_, _ = w.Write(yamlOutput)
	case "table":
		rows, err := buildRows(cmd, cs)
		if err != nil {
			return err
		}
		TableWriter(rows, cmd, w)
	default:
		report, err := renderText(cmd, cs)
		// A render failure still gets the successfully rendered lines out,
		// followed by the error.
		if report != "" {
			fmt.Fprint(w, report)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func renderText(cmd *cli.Command, cs *diff.ChangeSet) (string, error) {
	filtered := Filter(cs, cmd.String("filter"))
	if cmd.Bool("color") {
		return render.Color(filtered)
	}
	return render.Text(filtered)
}

// Filter keeps only the changes matching the comma-separated spec. Each
// term is either an op name (added, deleted, changed, same) or a path
// prefix. An empty spec keeps everything; the emitters skip Same entries
// on their own.
func Filter(cs *diff.ChangeSet, spec string) *diff.ChangeSet {
	if spec == "" {
		return cs
	}

	var ops []string
	var prefixes []string
	for term := range strings.SplitSeq(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		switch term {
		case "added", "deleted", "changed", "same":
			ops = append(ops, term)
		default:
			prefixes = append(prefixes, term)
		}
	}

	var kept []diff.Change
	for _, c := range cs.Changes() {
		if !matchOp(c, ops) || !matchPrefix(c, prefixes) {
			continue
		}
		kept = append(kept, c)
	}
	return diff.NewChangeSet(kept...)
}

func matchOp(c diff.Change, ops []string) bool {
	if len(ops) == 0 {
		return true
	}
	for _, op := range ops {
		if c.Op.String() == op {
			return true
		}
	}
	return false
}

func matchPrefix(c diff.Change, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if c.Path == p || strings.HasPrefix(c.Path, p+".") || strings.HasPrefix(c.Path, p+"[") {
			return true
		}
	}
	return false
}

func buildRows(cmd *cli.Command, cs *diff.ChangeSet) ([]Row, error) {
	filtered := Filter(cs, cmd.String("filter"))

	rows := make([]Row, 0, filtered.Len())
	for _, c := range filtered.Changes() {
		if c.Op == diff.OpSame {
			continue
		}

		row := Row{Op: c.Op.String(), Path: c.Path}
		var err error
		if c.Old != nil {
			if row.Old, err = value.Format(c.Old); err != nil {
				return rows, fmt.Errorf("format %s: %w", c.Path, err)
			}
		}
		if c.New != nil {
			if row.New, err = value.Format(c.New); err != nil {
				return rows, fmt.Errorf("format %s: %w", c.Path, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// TableWriter renders the rows in tabular form honoring color, titles
// and padding options. Output is written to w.
func TableWriter(rows []Row, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var cells [][]string
	for _, row := range rows {
		cells = append(cells, []string{row.Op, row.Path, row.Old, row.New})
	}

	pad := int(cmd.Int("padding"))
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("OP", "PATH", "OLD", "NEW").BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	log.Debugf("table rendered: rows=%d", len(rows))
}

// getColors returns configured color values for table rendering. Each
// color is selected based on terminal background so output stays
// visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to
	// the user to choose appropriate colors for their theme.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
