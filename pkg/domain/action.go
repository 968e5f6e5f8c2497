package domain

import "image"

// Action tags what the user did with the button.
type Action string

const (
	ActionNone  Action = ""      // No interaction (or an error)
	ActionPaste Action = "paste" // An image was pasted and decoded
	ActionClear Action = "clear" // The user asked to clear the pasted image
)

// PasteResult is the uniform outcome of a button invocation.
// It is built fresh on every call and owned by the caller.
type PasteResult struct {
	// Image is the decoded bitmap. It is only set on a successful paste.
	Image image.Image

	// Format is the name reported by the image decoder (e.g. "png").
	Format string

	// Action is ActionClear iff the user sent an explicit clear signal.
	Action Action
}

// IsClear reports whether this result is a clear action.
func (r PasteResult) IsClear() bool {
	return r.Action == ActionClear
}

// IsPaste reports whether this result carries a pasted image.
func (r PasteResult) IsPaste() bool {
	return r.Image != nil
}
