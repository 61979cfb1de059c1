package pretty

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/runner"
)

const summaryLabelWidth = 8

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "Parsed 3 files, 42 blocks, 120 spans in 4ms".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, elapsed time.Duration) string {
	var b strings.Builder

	status := s.Success
	if stats.FilesFailed > 0 {
		status = s.Failure
	}
	b.WriteString(status.Render(fmt.Sprintf("Parsed %d %s", stats.FilesParsed, plural(stats.FilesParsed, "file", "files"))))

	if stats.FilesFailed > 0 {
		b.WriteString(s.Error.Render(fmt.Sprintf(" (%d failed)", stats.FilesFailed)))
	}

	fmt.Fprintf(&b, ", %d %s, %d %s",
		stats.Blocks, plural(stats.Blocks, "block", "blocks"),
		stats.Spans, plural(stats.Spans, "span", "spans"))

	if elapsed > 0 {
		b.WriteString(s.Dim.Render(" in " + elapsed.Round(time.Millisecond).String()))
	}
	b.WriteByte('\n')
	return b.String()
}

// FormatSummary formats run statistics as a small labelled table.
func (s *Styles) FormatSummary(stats runner.Stats, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(s.FormatSummaryOneLine(stats, elapsed))

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n",
			s.SummaryTitle.Render(fmt.Sprintf("%-*s", summaryLabelWidth, label)),
			s.SummaryValue.Render(value))
	}

	row("bytes", formatBytes(stats.Bytes))
	row("blocks", formatKinds(stats.BlocksByKind))
	if len(stats.CodeLanguages) > 0 {
		row("code", formatCounts(stats.CodeLanguages))
	}

	return b.String()
}

// formatKinds lists non-zero block counts in block kind order.
func formatKinds(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, kind := range doctree.AllBlockKinds() {
		if n := counts[kind.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", kind, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " · ")
}

// formatCounts lists counts by descending count, then name.
func formatCounts(counts map[string]int) string {
	names := slices.Sorted(maps.Keys(counts))
	slices.SortStableFunc(names, func(a, b string) int { return counts[b] - counts[a] })

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, counts[name]))
	}
	return strings.Join(parts, " · ")
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
