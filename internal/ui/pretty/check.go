package pretty

import (
	"fmt"
	"strings"
)

// FormatDivergence formats one disagreement between the block scanner and
// the reference parser.
// Example: "doc.md:3: paragraph ≠ heading(1)".
func (s *Styles) FormatDivergence(path string, line int, ours, reference string) string {
	return fmt.Sprintf("%s%s %s %s %s\n",
		s.FilePath.Render(path),
		s.Lines.Render(fmt.Sprintf(":%d:", line)),
		s.Ours.Render(ours),
		s.Dim.Render("≠"),
		s.Reference.Render(reference))
}

// FormatCheckSummary formats the closing line of a check run.
func (s *Styles) FormatCheckSummary(files, divergent, divergences int) string {
	var b strings.Builder
	if divergences == 0 {
		b.WriteString(s.Success.Render(fmt.Sprintf("%d %s with the reference parser",
			files, plural(files, "file agrees", "files agree"))))
	} else {
		b.WriteString(s.Failure.Render(fmt.Sprintf("%d %s", divergences, plural(divergences, "divergence", "divergences"))))
		fmt.Fprintf(&b, " in %d of %d %s", divergent, files, plural(files, "file", "files"))
	}
	b.WriteByte('\n')
	return b.String()
}
