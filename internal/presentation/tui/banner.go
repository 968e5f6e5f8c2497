package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner in the default button palette.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	title := termenv.String(" 📋 pastebutton ").
		Foreground(p.Color(domain.DefaultTextColor)).
		Background(p.Color(domain.DefaultBackgroundColor)).
		Bold()
	ver := termenv.String(" v" + version).Foreground(p.Color(domain.DefaultHoverBackgroundColor))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s\n", title, ver)
	fmt.Fprintln(w)
}

// Swatch renders the button label in its configured colors, as the browser would.
func Swatch(params domain.BridgeParams) string {
	p := termenv.ColorProfile()
	return termenv.String(" " + params.Label + " ").
		Foreground(p.Color(params.TextColor)).
		Background(p.Color(params.BackgroundColor)).
		String()
}
