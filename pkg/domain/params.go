package domain

// ErrorMode controls whether bridge errors are shown to the user.
type ErrorMode string

const (
	ErrorsIgnore ErrorMode = "ignore"
	ErrorsRaise  ErrorMode = "raise"
)

// Raise reports whether errors should produce a notification.
// Any value other than "raise" behaves like "ignore".
func (m ErrorMode) Raise() bool {
	return m == ErrorsRaise
}

// BridgeParams are forwarded verbatim to the bridge on every render.
type BridgeParams struct {
	Label                string `json:"label" yaml:"label" mapstructure:"label"`
	TextColor            string `json:"text_color" yaml:"text_color" mapstructure:"text_color"`
	BackgroundColor      string `json:"background_color" yaml:"background_color" mapstructure:"background_color"`
	HoverBackgroundColor string `json:"hover_background_color" yaml:"hover_background_color" mapstructure:"hover_background_color"`
	Key                  string `json:"key" yaml:"key" mapstructure:"key"`
	HasImage             bool   `json:"has_image" yaml:"has_image" mapstructure:"has_image"`
}

// DefaultBridgeParams returns the params used when the caller sets no style.
func DefaultBridgeParams(label string) BridgeParams {
	return BridgeParams{
		Label:                label,
		TextColor:            DefaultTextColor,
		BackgroundColor:      DefaultBackgroundColor,
		HoverBackgroundColor: DefaultHoverBackgroundColor,
		Key:                  DefaultKey,
	}
}

// Notification is a user-facing error message in Markdown.
type Notification struct {
	Icon     string
	Markdown string
}
