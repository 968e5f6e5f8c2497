package response

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	// Decoders for the formats a browser or desktop clipboard hands out.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/aretw0/pastebutton/pkg/domain"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Base64Separator splits a data URL into its header and payload.
const Base64Separator = ";base64,"

// DecodeDataURL decodes a "<header>;base64,<payload>" string into a bitmap.
// The header is discarded; the format is sniffed from the payload bytes.
func DecodeDataURL(dataURL string) (image.Image, string, error) {
	parts := strings.Split(dataURL, Base64Separator)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("%w: expected one %q separator, found %d", domain.ErrMalformedDataURL, Base64Separator, len(parts)-1)
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrUndecodableImage, err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrUndecodableImage, err)
	}

	return img, format, nil
}

// PNGDataURL wraps already PNG-encoded bytes in a data URL.
func PNGDataURL(data []byte) string {
	return "data:image/png" + Base64Separator + base64.StdEncoding.EncodeToString(data)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeDataURL encodes img as PNG and wraps it in a data URL.
func EncodeDataURL(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return PNGDataURL(data), nil
}
