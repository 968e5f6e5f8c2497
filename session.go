package pastebutton

import (
	"context"
	"strings"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/ports"
)

// HasImage reports whether the session already holds a pasted image.
// A nil session, a missing entry or an entry without the marker all mean false.
func HasImage(ctx context.Context, session ports.SessionState) bool {
	if session == nil {
		return false
	}
	value, ok := session.Get(ctx, domain.SessionImageKey)
	if !ok {
		return false
	}
	return containsMarker(value)
}

// containsMarker matches a string entry by substring and a list entry by element.
func containsMarker(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.Contains(v, domain.PastedImageMarker)
	case []string:
		for _, s := range v {
			if s == domain.PastedImageMarker {
				return true
			}
		}
	case []any:
		for _, s := range v {
			if s == domain.PastedImageMarker {
				return true
			}
		}
	}
	return false
}

// RecordResult keeps the session marker in sync with what the user did:
// a paste sets it, a clear removes it, anything else leaves it alone.
func RecordResult(ctx context.Context, store ports.SessionStore, result domain.PasteResult) error {
	if store == nil {
		return nil
	}
	switch {
	case result.IsClear():
		return store.Delete(ctx, domain.SessionImageKey)
	case result.IsPaste():
		return store.Set(ctx, domain.SessionImageKey, domain.PastedImageMarker)
	}
	return nil
}
