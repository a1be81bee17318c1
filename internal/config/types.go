package config

// Output formats for the diagnosis report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the runtime settings for one nodediag invocation.
type Config struct {
	// Interpreter is the binary the target script is run with.
	Interpreter string
	// Format selects the report renderer: text or json.
	Format string
	// Color is auto, always or never.
	Color string
	// Debug enables zap debug logging on stderr.
	Debug bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interpreter: "node",
		Format:      FormatText,
		Color:       ColorAuto,
	}
}
