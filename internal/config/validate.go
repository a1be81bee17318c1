package config

import "fmt"

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var recognizedFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

var recognizedColors = map[string]bool{
	ColorAuto:   true,
	ColorAlways: true,
	ColorNever:  true,
}

// Validate checks a Config for invalid values.
// It returns a slice of all validation errors found (empty if valid).
func Validate(cfg Config) []ValidationError {
	var errs []ValidationError

	if cfg.Interpreter == "" {
		errs = append(errs, ValidationError{Field: "interpreter", Message: "is required"})
	}
	if !recognizedFormats[cfg.Format] {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unrecognized format %q (want text or json)", cfg.Format),
		})
	}
	if !recognizedColors[cfg.Color] {
		errs = append(errs, ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("unrecognized color mode %q (want auto, always or never)", cfg.Color),
		})
	}

	return errs
}
