package hunspell

// Config controls checker-facing behavior that sits above the parsed
// affix Configuration: suggestion budget and edit-distance bounds.
//
// Example:
//
//	config := hunspell.DefaultConfig()
//	config.MaxSuggestions = 5
//	checker, err := hunspell.New(affixFile, dictFile, config)
type Config struct {
	// MaxSuggestions caps the number of candidates Suggest returns.
	// Default: 10
	MaxSuggestions int

	// MaxCompoundSuggestions caps how many of those candidates may be
	// two-word split suggestions.
	// Default: 3
	MaxCompoundSuggestions int

	// MaxEditDistance bounds the final Levenshtein scan fallback stage
	// of Suggest: 2 for inputs of 4 or more characters, 3 otherwise,
	// unless overridden here.
	// Default: 0 (use the length-dependent default)
	MaxEditDistance int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxSuggestions:         10,
		MaxCompoundSuggestions: 3,
		MaxEditDistance:        0,
	}
}

// Validate checks that c's fields are in range.
//
// Valid ranges:
//   - MaxSuggestions: 1 to 100
//   - MaxCompoundSuggestions: 0 to MaxSuggestions
//   - MaxEditDistance: 0 to 10 (0 means "use the length-dependent default")
func (c Config) Validate() error {
	if c.MaxSuggestions < 1 || c.MaxSuggestions > 100 {
		return &ConfigError{Field: "MaxSuggestions", Message: "must be between 1 and 100"}
	}
	if c.MaxCompoundSuggestions < 0 || c.MaxCompoundSuggestions > c.MaxSuggestions {
		return &ConfigError{Field: "MaxCompoundSuggestions", Message: "must be between 0 and MaxSuggestions"}
	}
	if c.MaxEditDistance < 0 || c.MaxEditDistance > 10 {
		return &ConfigError{Field: "MaxEditDistance", Message: "must be between 0 and 10"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "hunspell: invalid config: " + e.Field + ": " + e.Message
}
