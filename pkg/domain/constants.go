package domain

// Keys of a structured bridge reply, shared by the decoder and the bridges that produce replies.
const (
	// FieldType is the discriminator of a structured bridge reply.
	FieldType = "type"
	// FieldMessage carries the error text of an "error" reply.
	FieldMessage = "message"
	// FieldData carries the data URL of an "image" reply.
	FieldData = "data"
)

// Discriminator values sent by the browser side.
const (
	TypeClear = "clear"
	TypeError = "error"
	TypeImage = "image"
)

// Widget defaults.
const (
	DefaultTextColor            = "#ffffff"
	DefaultBackgroundColor      = "#3498db"
	DefaultHoverBackgroundColor = "#2980b9"
	DefaultKey                  = "paste_button"
	DefaultErrorMode            = ErrorsIgnore
)

// Session state lookup used to compute BridgeParams.HasImage.
const (
	// SessionImageKey is the session state entry the host keeps the pasted image marker in.
	SessionImageKey = "session_image_array"
	// PastedImageMarker is the value that marks an existing pasted image.
	PastedImageMarker = "pasted png image file"
)

// Notification text.
const (
	NotificationIcon     = "🚨"
	UnknownErrorMessage  = "Unknown error"
	NoImageNotification  = "**Error**: No image found in clipboard"
	NoImageBrowserReason = "No image found in clipboard"
)
