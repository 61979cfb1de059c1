package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies slices and pointers", func(t *testing.T) {
		original := &config.Config{
			Ignore:          []string{"*.md", "vendor/**"},
			Extensions:      []string{".md"},
			DetectLanguages: config.Bool(true),
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Ignore, clone.Ignore)

		clone.Ignore[0] = "changed"
		clone.Extensions[0] = ".txt"
		*clone.DetectLanguages = false

		assert.Equal(t, "*.md", original.Ignore[0])
		assert.Equal(t, ".md", original.Extensions[0])
		assert.True(t, *original.DetectLanguages)
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Format = config.FormatJSON
		original.Flavor = config.FlavorGFM
		original.Jobs = 4
		original.Compact = true

		clone := original.Clone()
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Format: config.FormatYAML,
			Flavor: config.FlavorGFM,
			Jobs:   8,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "format: yaml")
		assert.Contains(t, string(data), "flavor: gfm")
		assert.NotContains(t, string(data), "jobs")
	})

	t.Run("header is prepended", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# hello")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# hello\n\n")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`
format: json
color: never
extensions: [".md", ".mdx"]
max_input_bytes: 2048
detect_languages: true
flavor: gfm
`))
		require.NoError(t, err)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.Equal(t, config.ColorNever, cfg.Color)
		assert.Equal(t, []string{".md", ".mdx"}, cfg.Extensions)
		assert.Equal(t, int64(2048), cfg.MaxInputBytes)
		assert.True(t, cfg.ShouldDetectLanguages())
		assert.Nil(t, cfg.PromoteImages)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := config.FromYAML([]byte("formatt: json\n"))
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		original := config.NewConfig()
		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})
}
