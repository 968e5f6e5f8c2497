/*
Package pastebutton is a clipboard "paste image" button for notebook-style web applications.

The browser side reads an image from the clipboard and reports it through a
Bridge. This package forwards the button styling to that bridge, tells it
whether the session already holds a pasted image, and turns whatever comes
back into a single domain.PasteResult.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/pastebutton"
		"github.com/aretw0/pastebutton/pkg/adapters/http"
		"github.com/aretw0/pastebutton/pkg/adapters/memory"
		"github.com/aretw0/pastebutton/pkg/domain"
	)

	func main() {
		bridge := http.NewServer()
		session := memory.NewSessionStore()

		widget := pastebutton.New(bridge, pastebutton.WithSessionState(session))

		result, err := widget.Button(context.Background(), "📋 Paste an image",
			pastebutton.WithErrors(domain.ErrorsRaise),
		)
		if err != nil {
			log.Fatal(err)
		}
		if result.IsPaste() {
			log.Printf("pasted %s image of %v", result.Format, result.Image.Bounds())
		}
	}

# Protocol

The bridge returns either nothing, a record {"type": "clear"|"error"|"image", ...}
or, for older frontends, a plain string that is an "error: ..." message or a
data URL. Browser errors never surface as Go errors; a payload that cannot be
decoded always does.
*/
package pastebutton
