// Package config defines core configuration types for mdtree.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// DefaultMaxInputBytes caps the size of a single input file (10 MiB).
const DefaultMaxInputBytes int64 = 10 << 20

// OutputFormat specifies how parsed documents are reported.
type OutputFormat string

const (
	FormatTree    OutputFormat = "tree"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatPlain   OutputFormat = "plain"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Flavor specifies the Markdown flavor used by the reference parser in
// `mdtree check`. It never changes what the block scanner produces.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for mdtree.
type Config struct {
	// Format is the report format.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Color selects when output is styled.
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Extensions lists the file extensions treated as Markdown during discovery.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// MaxInputBytes rejects larger inputs; 0 disables the cap.
	MaxInputBytes int64 `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`

	// DetectLanguages annotates code blocks with a canonical language.
	DetectLanguages *bool `mapstructure:"detect_languages" yaml:"detect_languages,omitempty"`

	// PromoteImages turns image-only paragraphs into image blocks before reporting.
	PromoteImages *bool `mapstructure:"promote_images" yaml:"promote_images,omitempty"`

	// Flavor is the reference flavor for `mdtree check`.
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `mapstructure:"-" yaml:"-"`

	// Compact disables indentation in json and yaml output.
	Compact bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:          FormatTree,
		Color:           ColorAuto,
		LogLevel:        "info",
		Extensions:      []string{".md", ".markdown"},
		Ignore:          nil,
		MaxInputBytes:   DefaultMaxInputBytes,
		DetectLanguages: Bool(false),
		PromoteImages:   Bool(false),
		Flavor:          FlavorCommonMark,
		Jobs:            0,
	}
}

// ShouldDetectLanguages reports whether code blocks get language annotations.
func (c *Config) ShouldDetectLanguages() bool {
	return c != nil && BoolValue(c.DetectLanguages)
}

// ShouldPromoteImages reports whether image-only paragraphs are promoted.
func (c *Config) ShouldPromoteImages() bool {
	return c != nil && BoolValue(c.PromoteImages)
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences p, treating nil as false.
func BoolValue(p *bool) bool {
	return p != nil && *p
}
