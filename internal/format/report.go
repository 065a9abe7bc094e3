package format

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"dashcheck/internal/display"
	"dashcheck/internal/expect"
	"dashcheck/internal/ui"
	"dashcheck/internal/verify"
)

// ExpectationTable renders e as a cohort-by-metric grid: one row per active
// cohort, the sample size first, then each metric in display order.
func ExpectationTable(m Mode, e expect.Expectation) string {
	cols := []string{"Cohort", "Samples"}
	for _, k := range e.MetricOrder {
		cols = append(cols, display.Metric(string(k)))
	}
	t := NewTable(m).Header(cols...)
	t.Title(fmt.Sprintf("%s (%s)", e.Dataset, display.Task(string(e.Task))))

	right := make([]int, 0, len(cols)-1)
	for i := 2; i <= len(cols); i++ {
		right = append(right, i)
	}
	t.AlignRight(right...)

	for _, c := range e.Cohorts {
		row := []any{c.Name, c.SampleSize}
		for _, k := range e.MetricOrder {
			row = append(row, c.Metric(k))
		}
		t.Row(row...)
	}
	t.Footer("cells", e.CellCount)
	return t.String()
}

// PresenceTable renders the element presence requirements of e, sorted by
// locator, plus the default chart.
func PresenceTable(m Mode, e expect.Expectation) string {
	locs := make([]ui.Locator, 0, len(e.Presence))
	for loc := range e.Presence {
		locs = append(locs, loc)
	}
	slices.Sort(locs)

	t := NewTable(m).Header("Element", "Required")
	for _, loc := range locs {
		t.Row(string(loc), display.Presence(e.Presence[loc].String()))
	}
	t.Footer("Default chart", display.Chart(string(e.DefaultChart)))
	return t.String()
}

// ResultsTable renders one row per suite result with a pass count footer.
func ResultsTable(m Mode, results []verify.Result) string {
	t := NewTable(m).Header("Dataset", "Outcome", "Duration", "Detail")
	passed := 0
	for _, r := range results {
		detail := ""
		if r.Err != nil {
			detail = Truncate(oneLine(r.Err.Error()), 96)
		} else {
			passed++
		}
		t.Row(r.Dataset, display.Outcome(r.Err == nil), Duration(r.Duration), detail)
	}
	t.Footer("", fmt.Sprintf("%d/%d", passed, len(results)), "", "")
	return t.String()
}

// Duration formats d as "Xm Ys", "Y.Ys" or "Nms".
func Duration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		s := int(d.Seconds())
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// Truncate shortens s to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
