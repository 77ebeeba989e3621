// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/value"
)

// Text renders a ChangeSet as the line-oriented report: every line is
// prefixed with "+" (present only in the new document) or "-" (present
// only in the old one). Same entries emit nothing; Changed entries
// render as the old value deleted immediately followed by the new value
// added.
//
// If a value fails to serialize, the lines rendered up to that point are
// returned together with the error.
func Text(cs *diff.ChangeSet) (string, error) {
	var b strings.Builder
	for _, c := range cs.Changes() {
		if err := writeChange(&b, c); err != nil {
			return b.String(), err
		}
	}
	return b.String(), nil
}

func writeChange(b *strings.Builder, c diff.Change) error {
	switch c.Op {
	case diff.OpAdded:
		return writeValue(b, '+', c.Path, c.New)
	case diff.OpDeleted:
		return writeValue(b, '-', c.Path, c.Old)
	case diff.OpChanged:
		if err := writeValue(b, '-', c.Path, c.Old); err != nil {
			return err
		}
		return writeValue(b, '+', c.Path, c.New)
	default:
		// Same entries never produce output.
		return nil
	}
}

// writeValue emits one value under the given prefix. Tables expand to a
// section header followed by every entry, each child keyed by its own
// key; all other values serialize through the value formatter, with the
// prefix repeated on every resulting line.
func writeValue(b *strings.Builder, prefix byte, key string, v *value.Value) error {
	if v.Kind() == value.Table {
		fmt.Fprintf(b, "%c [%s]\n", prefix, key)
		for _, k := range v.Keys() {
			if err := writeValue(b, prefix, k, v.Entry(k)); err != nil {
				return err
			}
		}
		return nil
	}

	text, err := value.Format(v)
	if err != nil {
		return fmt.Errorf("render %s: %w", key, err)
	}

	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			fmt.Fprintf(b, "%c %s = %s\n", prefix, key, line)
		} else {
			fmt.Fprintf(b, "%c %s\n", prefix, line)
		}
	}
	return nil
}

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Color renders the same report as Text with added lines styled green
// and deleted lines red. With no color-capable terminal attached the
// styles degrade to plain text.
func Color(cs *diff.ChangeSet) (string, error) {
	plain, err := Text(cs)
	if plain == "" {
		return plain, err
	}

	var b strings.Builder
	for line := range strings.Lines(plain) {
		trimmed := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(trimmed, "+"):
			b.WriteString(addedStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "-"):
			b.WriteString(deletedStyle.Render(trimmed))
		default:
			b.WriteString(trimmed)
		}
		b.WriteByte('\n')
	}
	return b.String(), err
}
