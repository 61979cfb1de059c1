package configloader

import "github.com/yaklabco/mdtree/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.MaxInputBytes != 0 {
		result.MaxInputBytes = override.MaxInputBytes
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Compact can only be switched on; it has no file representation.
	if override.Compact {
		result.Compact = true
	}

	if override.DetectLanguages != nil {
		result.DetectLanguages = config.Bool(*override.DetectLanguages)
	}
	if override.PromoteImages != nil {
		result.PromoteImages = config.Bool(*override.PromoteImages)
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
