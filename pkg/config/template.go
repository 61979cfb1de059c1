package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every field with its default value.
	// If false, generates a minimal commented template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate()
	}
	return []byte(minimalTemplate), nil
}

const minimalTemplate = `# mdtree configuration
# See: https://github.com/yaklabco/mdtree

# Output format: tree, json, yaml, plain or summary
format: tree

# Styled output: auto, always or never
# color: auto

# Log level: debug, info, warn or error
# log_level: info

# File extensions treated as Markdown
# extensions:
#   - ".md"
#   - ".markdown"

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Largest accepted input in bytes (0 = no limit)
# max_input_bytes: 10485760

# Annotate code blocks with a detected language
# detect_languages: false

# Report image-only paragraphs as image blocks
# promote_images: false

# Reference flavor for 'mdtree check': commonmark or gfm
# flavor: commonmark
`

// generateFullTemplate renders the defaults with a header comment.
func generateFullTemplate() ([]byte, error) {
	cfg := NewConfig()
	cfg.Ignore = []string{"vendor/**", "node_modules/**", ".git/**"}

	out, err := cfg.ToYAMLWithHeader(DefaultTemplateHeader() + `
#
# This template lists every setting with its default value.`)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return out, nil
}

// templateToJSON renders the defaults as JSON.
func templateToJSON() ([]byte, error) {
	cfg := NewConfig()

	data := map[string]any{
		"format":           cfg.Format,
		"color":            cfg.Color,
		"log_level":        cfg.LogLevel,
		"extensions":       cfg.Extensions,
		"ignore":           []string{},
		"max_input_bytes":  cfg.MaxInputBytes,
		"detect_languages": BoolValue(cfg.DetectLanguages),
		"promote_images":   BoolValue(cfg.PromoteImages),
		"flavor":           cfg.Flavor,
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdtree configuration
# See: https://github.com/yaklabco/mdtree`
}
