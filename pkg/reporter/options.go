package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdtree/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls styled output for the tree and summary formats.
	Color config.ColorMode

	// Compact disables indentation in json and yaml output.
	Compact bool

	// ShowSummary appends aggregate statistics to tree output.
	ShowSummary bool

	// Width caps tree lines; 0 uses the terminal width of Writer.
	Width int

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatTree,
		Color:       config.ColorAuto,
		ShowSummary: true,
	}
}
