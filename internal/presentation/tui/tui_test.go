package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()

	out, err := render("**Error**: No image found in clipboard")
	require.NoError(t, err)
	assert.Contains(t, out, "No image found in clipboard")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "pastebutton")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestSwatch(t *testing.T) {
	s := Swatch(domain.DefaultBridgeParams("Paste"))
	assert.True(t, strings.Contains(s, "Paste"))
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
