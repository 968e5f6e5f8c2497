package pastebutton

import "github.com/aretw0/pastebutton/pkg/domain"

type buttonConfig struct {
	params domain.BridgeParams
	errors domain.ErrorMode
}

// ButtonOption customizes a single Button call.
type ButtonOption func(*buttonConfig)

// WithTextColor sets the label color.
func WithTextColor(color string) ButtonOption {
	return func(c *buttonConfig) {
		c.params.TextColor = color
	}
}

// WithBackgroundColor sets the button background.
func WithBackgroundColor(color string) ButtonOption {
	return func(c *buttonConfig) {
		c.params.BackgroundColor = color
	}
}

// WithHoverBackgroundColor sets the background shown while hovering.
func WithHoverBackgroundColor(color string) ButtonOption {
	return func(c *buttonConfig) {
		c.params.HoverBackgroundColor = color
	}
}

// WithKey identifies the widget instance (default "paste_button").
func WithKey(key string) ButtonOption {
	return func(c *buttonConfig) {
		c.params.Key = key
	}
}

// WithErrors selects whether browser errors are shown to the user.
func WithErrors(mode domain.ErrorMode) ButtonOption {
	return func(c *buttonConfig) {
		c.errors = mode
	}
}

// WithStyle copies label-independent styling (colors and key) from p.
// Empty fields keep their defaults.
func WithStyle(p domain.BridgeParams) ButtonOption {
	return func(c *buttonConfig) {
		if p.TextColor != "" {
			c.params.TextColor = p.TextColor
		}
		if p.BackgroundColor != "" {
			c.params.BackgroundColor = p.BackgroundColor
		}
		if p.HoverBackgroundColor != "" {
			c.params.HoverBackgroundColor = p.HoverBackgroundColor
		}
		if p.Key != "" {
			c.params.Key = p.Key
		}
	}
}

func newButtonConfig(label string, opts ...ButtonOption) buttonConfig {
	cfg := buttonConfig{
		params: domain.DefaultBridgeParams(label),
		errors: domain.DefaultErrorMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
