package dropdown

// Config carries the presentation knobs shared by every rendering of the
// widget.
type Config struct {
	Placeholder  string
	Disabled     bool
	ErrorMessage string
	PageSize     int
	NoMatchText  string
}

// ConfigFn mutates a Config during construction.
type ConfigFn func(*Config)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Placeholder: "Select an option",
		PageSize:    10,
		NoMatchText: "No options found",
	}
}

// NewConfig applies overrides on top of the defaults.
func NewConfig(fns ...ConfigFn) Config {
	cfg := DefaultConfig()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Select an option"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.NoMatchText == "" {
		cfg.NoMatchText = "No options found"
	}
	return cfg
}

// WithPlaceholder overrides the text shown while nothing is selected.
func WithPlaceholder(text string) ConfigFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.Placeholder = text
	}
}

// WithDisabled marks the widget as not openable.
func WithDisabled(disabled bool) ConfigFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.Disabled = disabled
	}
}

// WithErrorMessage attaches a validation message rendered under the control.
func WithErrorMessage(message string) ConfigFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.ErrorMessage = message
	}
}

// WithPageSize bounds how many option rows a rendering shows at once.
func WithPageSize(size int) ConfigFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.PageSize = size
	}
}

// WithNoMatchText overrides the explicit empty-result indication.
func WithNoMatchText(text string) ConfigFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.NoMatchText = text
	}
}
