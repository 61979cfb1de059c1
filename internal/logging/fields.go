// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldFormat   = "format"
	FieldFlavor   = "flavor"
	FieldJobs     = "jobs"
	FieldMaxBytes = "max_input_bytes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesParsed     = "files_parsed"
	FieldFilesFailed     = "files_failed"
	FieldBlocks          = "blocks"
	FieldSpans           = "spans"
	FieldDivergences     = "divergences"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion   = "version"
	FieldCommit    = "commit"
	FieldBuilt     = "built"
	FieldGoVersion = "go"
	FieldPlatform  = "platform"

	// Block fields.
	FieldKind     = "kind"
	FieldLine     = "line"
	FieldLanguage = "language"
)
