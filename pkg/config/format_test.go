package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtree/pkg/config"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		want   bool
	}{
		{config.FormatTree, true},
		{config.FormatJSON, true},
		{config.FormatYAML, true},
		{config.FormatPlain, true},
		{config.FormatSummary, true},
		{config.OutputFormat("sarif"), false},
		{config.OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}

	for _, format := range config.OutputFormats() {
		assert.True(t, format.IsValid(), "listed format %q must be valid", format)
	}
}

func TestColorModeAndFlavor_IsValid(t *testing.T) {
	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())

	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("mmark").IsValid())
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FormatTree, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.Equal(t, config.DefaultMaxInputBytes, cfg.MaxInputBytes)
	assert.False(t, cfg.ShouldDetectLanguages())
	assert.False(t, cfg.ShouldPromoteImages())
	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
}

func TestBoolHelpers(t *testing.T) {
	assert.False(t, config.BoolValue(nil))
	assert.True(t, config.BoolValue(config.Bool(true)))

	var cfg *config.Config
	assert.False(t, cfg.ShouldDetectLanguages())
}
