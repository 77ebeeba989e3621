// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/value"
)

func renderTOML(t *testing.T, newDoc, oldDoc string) string {
	t.Helper()

	nd, err := value.DecodeTOML([]byte(newDoc))
	require.NoError(t, err)
	od, err := value.DecodeTOML([]byte(oldDoc))
	require.NoError(t, err)

	cs, err := diff.Diff(nd, od)
	require.NoError(t, err)

	text, err := Text(cs)
	require.NoError(t, err)
	return text
}

func TestTextStringChanges(t *testing.T) {
	got := renderTOML(t, `
a = "abc"
b = "def"
d = "jkl"
e = "mno"
f = "pqr"
`, `
a = "abc"
c = "ghi"
d = "jkl"
`)

	want := `+ b = "def"
- c = "ghi"
+ e = "mno"
+ f = "pqr"
`
	require.Equal(t, want, got)
}

func TestTextArrayChanges(t *testing.T) {
	got := renderTOML(t, `
a = [1, 2, 3]
b = [2, 3, 4]
d = [4, 5, 6]
`, `
b = [2, 3, 4]
c = [3, 4, 5]
d = [4, 5, 6]
e = [5, 6, 7]
f = [6, 7, 8]
`)

	want := `+ a = [1, 2, 3]
- c = [3, 4, 5]
- e = [5, 6, 7]
- f = [6, 7, 8]
`
	require.Equal(t, want, got)
}

func TestTextTableChanges(t *testing.T) {
	got := renderTOML(t, `
[a]
x = 1

[b]
c = "ghi"
d = "jkl"
`, `
[a]
x = 1

[c]
e = "nmo"
f = "pqr"
`)

	want := `+ [b]
+ c = "ghi"
+ d = "jkl"
- [c]
- e = "nmo"
- f = "pqr"
`
	require.Equal(t, want, got)
}

func TestTextNestedTableChanges(t *testing.T) {
	got := renderTOML(t, `
[outer]
[outer.inner_a]
a = 1
[outer.inner_c]
c = 3
`, `
[outer]
[outer.inner_a]
a = 1
[outer.inner_b]
b = 2
`)

	want := `- [outer.inner_b]
- b = 2
+ [outer.inner_c]
+ c = 3
`
	require.Equal(t, want, got)
}

func TestTextChangedRendersDeleteThenAdd(t *testing.T) {
	got := renderTOML(t, `a = "new"`, `a = "old"`)

	want := `- a = "old"
+ a = "new"
`
	require.Equal(t, want, got)
}

func TestTextKindMismatch(t *testing.T) {
	got := renderTOML(t, `a = 1`, `a = "one"`)

	want := `- a = "one"
+ a = 1
`
	require.Equal(t, want, got)
}

func TestTextReflexiveIsEmpty(t *testing.T) {
	doc := `
a = "abc"

[outer]
[outer.inner]
v = [1, 2]
`
	require.Empty(t, renderTOML(t, doc, doc))
}

func TestTextDirectionalAsymmetry(t *testing.T) {
	// Add/delete-only diffs must swap +/- prefixes exactly, line for
	// line, when the arguments swap.
	a := `
common = 1
only_a = "x"

[table_a]
k = 1
`
	b := `
common = 1
only_b = "y"
`

	forward := renderTOML(t, a, b)
	backward := renderTOML(t, b, a)

	fLines := strings.Split(forward, "\n")
	bLines := strings.Split(backward, "\n")
	require.Equal(t, len(fLines), len(bLines))

	swap := func(s string) string {
		switch {
		case strings.HasPrefix(s, "+"):
			return "-" + s[1:]
		case strings.HasPrefix(s, "-"):
			return "+" + s[1:]
		default:
			return s
		}
	}
	for i, line := range fLines {
		require.Equal(t, swap(line), bLines[i])
	}
}

func TestTextIdempotent(t *testing.T) {
	nd, err := value.DecodeTOML([]byte(`a = 1
b = [1, 2]`))
	require.NoError(t, err)
	od, err := value.DecodeTOML([]byte(`a = 2
c = "x"`))
	require.NoError(t, err)

	cs, err := diff.Diff(nd, od)
	require.NoError(t, err)

	first, err := Text(cs)
	require.NoError(t, err)
	second, err := Text(cs)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTextPartialOutputOnFormatFailure(t *testing.T) {
	good := value.NewInteger(1)
	bad := &value.Value{} // invalid kind

	cs := diff.NewChangeSet(
		diff.Change{Op: diff.OpAdded, Path: "ok", New: good},
		diff.Change{Op: diff.OpAdded, Path: "broken", New: bad},
		diff.Change{Op: diff.OpAdded, Path: "never", New: good},
	)

	got, err := Text(cs)
	require.Error(t, err)
	require.ErrorContains(t, err, "broken")
	require.Equal(t, "+ ok = 1\n", got)
}

func TestColorSameLineCount(t *testing.T) {
	nd, err := value.DecodeTOML([]byte(`a = 1`))
	require.NoError(t, err)
	od, err := value.DecodeTOML([]byte(`b = 2`))
	require.NoError(t, err)

	cs, err := diff.Diff(nd, od)
	require.NoError(t, err)

	plain, err := Text(cs)
	require.NoError(t, err)
	colored, err := Color(cs)
	require.NoError(t, err)

	// Without a color-capable terminal the styles are a no-op, but the
	// line structure must match either way.
	require.Equal(t,
		len(strings.Split(plain, "\n")),
		len(strings.Split(colored, "\n")))
}
