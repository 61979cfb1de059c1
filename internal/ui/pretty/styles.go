// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/doctree"
)

// DefaultWidth is the line width assumed when the writer is not a terminal.
const DefaultWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components
	FilePath lipgloss.Style
	Kind     lipgloss.Style
	Lines    lipgloss.Style
	Attr     lipgloss.Style
	Text     lipgloss.Style
	Guide    lipgloss.Style

	// Status
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Check output: the scanner's view against the reference parser's
	Ours      lipgloss.Style
	Reference lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true).Underline(true),
		Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Lines:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Attr:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Text:     lipgloss.NewStyle(),
		Guide:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Ours:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Reference: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:     plain,
		Kind:         plain,
		Lines:        plain,
		Attr:         plain,
		Text:         plain,
		Guide:        plain,
		Error:        plain,
		Warning:      plain,
		Success:      plain,
		Failure:      plain,
		Ours:         plain,
		Reference:    plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// ColorEnabled reports whether the styles emit ANSI sequences.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// Span returns the terminal style for an inline span style.
// Flags combine: a bold link is rendered bold and underlined in link color.
func (s *Styles) Span(style doctree.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	if !s.colorEnabled {
		return out
	}

	if style.Has(doctree.StyleBold) {
		out = out.Bold(true)
	}
	if style.Has(doctree.StyleItalic) {
		out = out.Italic(true)
	}
	if style.Has(doctree.StyleUnderline) {
		out = out.Underline(true)
	}
	if style.Has(doctree.StyleStrikethrough) {
		out = out.Strikethrough(true)
	}
	if style.Has(doctree.StyleMonospace) {
		out = out.Foreground(lipgloss.Color("11"))
	}
	if style.Has(doctree.StyleHighlight) {
		out = out.Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	}
	if style.Has(doctree.StyleSpoiler) {
		out = out.Reverse(true)
	}
	if style.Has(doctree.StyleLink) {
		out = out.Foreground(lipgloss.Color("12")).Underline(true)
	}
	if style.Has(doctree.StyleImage) {
		out = out.Foreground(lipgloss.Color("13"))
	}
	return out
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of writer when it is a terminal,
// and DefaultWidth otherwise.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
