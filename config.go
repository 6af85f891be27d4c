package regexcore

import "github.com/coregx/regexcore/asciiscan"

// Config controls compilation behavior: which fast paths are attempted
// and the resource bounds placed on pattern compilation.
//
// Grounded on coregx/meta/config.go's Config, scoped down to the
// components this module actually has: no DFA cache (the DFA here is
// built once and kept for the Regex's lifetime, not lazily grown) and
// no recursion-depth knob (the parser is not recursive in the pattern
// length; only in nesting depth, which DeterminizationLimit already
// bounds indirectly via the resulting state count).
type Config struct {
	// EnablePrefilter allows Compile to use the Aho-Corasick literal
	// fast path (section 4.5.2) when the pattern is a flat alternation
	// of single-character literals. When false, every Regex always
	// executes via the DFA.
	// Default: true
	EnablePrefilter bool

	// MaxPatternLength bounds the number of runes accepted in a
	// pattern string, rejecting pathological input before parsing.
	// Default: 4096
	MaxPatternLength int

	// DeterminizationLimit caps the number of states the produced DFA
	// may contain. Compile fails rather than return a DFA bigger than
	// this.
	// Default: 10000
	DeterminizationLimit int

	// CPUFeatures records what the host CPU could accelerate, for
	// Regex.Stats() to report. Populated by DefaultConfig; purely
	// informational, never changes which code path Compile takes.
	CPUFeatures asciiscan.Features
}

// DefaultConfig returns the configuration Compile uses implicitly.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		MaxPatternLength:     4096,
		DeterminizationLimit: 10000,
		CPUFeatures:          asciiscan.Supports(),
	}
}

// Validate checks that c's fields are within their accepted ranges.
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 || c.MaxPatternLength > 1_000_000 {
		return &ConfigError{
			Field:   "MaxPatternLength",
			Message: "must be between 1 and 1,000,000",
		}
	}
	if c.DeterminizationLimit < 1 || c.DeterminizationLimit > 1_000_000 {
		return &ConfigError{
			Field:   "DeterminizationLimit",
			Message: "must be between 1 and 1,000,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "regexcore: invalid config: " + e.Field + ": " + e.Message
}
