package expect

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// TrimRenderArtifact drops exactly one trailing character from rendered cell
// text. The heatmap renderer appends an invisible character to every data
// label; remove this once the renderer stops doing so.
func TrimRenderArtifact(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// CellMismatch describes the first rendered cell that fails comparison.
type CellMismatch struct {
	Index    int
	Rendered string // after normalization
	Expected string // expected value at Index, or the candidate set
	Diff     string // positional mode only
}

func (m *CellMismatch) String() string {
	if m.Diff != "" {
		return fmt.Sprintf("cell %d: got %q, want %s\n%s", m.Index, m.Rendered, m.Expected, m.Diff)
	}
	return fmt.Sprintf("cell %d: got %q, want %s", m.Index, m.Rendered, m.Expected)
}

// MatchCellsInSet checks that every rendered cell, after normalize, is one of
// expected. Rendering order is not assumed to follow assembly order. Empty
// expected values stand for metrics the fixture lacks and match nothing, so a
// blank cell always fails.
func MatchCellsInSet(rendered, expected []string, normalize func(string) string) *CellMismatch {
	set := make(map[string]struct{}, len(expected))
	for _, e := range expected {
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	for i, raw := range rendered {
		got := normalize(raw)
		if _, ok := set[got]; !ok {
			return &CellMismatch{Index: i, Rendered: got, Expected: fmt.Sprintf("one of %q", expected)}
		}
	}
	return nil
}

// MatchCellsInOrder checks rendered cells position by position. Use it only
// against a renderer that lays cells out in assembly order. As in
// MatchCellsInSet, a blank cell never matches.
func MatchCellsInOrder(rendered, expected []string, normalize func(string) string) *CellMismatch {
	got := make([]string, len(rendered))
	for i, raw := range rendered {
		got[i] = normalize(raw)
	}
	for i := range got {
		if i >= len(expected) || got[i] != expected[i] || got[i] == "" {
			want := "<none>"
			if i < len(expected) {
				want = fmt.Sprintf("%q", expected[i])
			}
			return &CellMismatch{Index: i, Rendered: got[i], Expected: want, Diff: cmp.Diff(expected, got)}
		}
	}
	if len(got) < len(expected) {
		return &CellMismatch{Index: len(got), Expected: fmt.Sprintf("%q", expected[len(got)]), Diff: cmp.Diff(expected, got)}
	}
	return nil
}
