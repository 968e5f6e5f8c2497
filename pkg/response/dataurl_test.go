package response_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 200, G: 10, A: 128})
			}
		}
	}
	return img
}

func TestDataURL_RoundTrip(t *testing.T) {
	original := checkerboard(7, 5)

	dataURL, err := response.EncodeDataURL(original)
	require.NoError(t, err)
	assert.Contains(t, dataURL, "data:image/png;base64,")

	decoded, format, err := response.DecodeDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	require.Equal(t, original.Bounds(), decoded.Bounds())

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, original.At(x, y), color.NRGBAModel.Convert(decoded.At(x, y)), "pixel %d,%d", x, y)
		}
	}
}

func TestDecodeDataURL_JPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, checkerboard(4, 4), nil))

	// The header is ignored, the format comes from the payload.
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	img, format, err := response.DecodeDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestDecodeDataURL_DesktopFormats(t *testing.T) {
	src := checkerboard(6, 4)
	encoders := map[string]func(*bytes.Buffer) error{
		"bmp":  func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) },
		"tiff": func(buf *bytes.Buffer) error { return tiff.Encode(buf, src, nil) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf))

			dataURL := "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
			img, got, err := response.DecodeDataURL(dataURL)
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
		})
	}
}

func TestDecodeDataURL_Failures(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
		wantErr error
	}{
		{"empty", "", domain.ErrMalformedDataURL},
		{"no separator", "data:image/png,AAAA", domain.ErrMalformedDataURL},
		{"two separators", "a;base64,b;base64,c", domain.ErrMalformedDataURL},
		{"bad base64", "data:image/png;base64,!!!", domain.ErrUndecodableImage},
		{"not an image", "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello")), domain.ErrUndecodableImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := response.DecodeDataURL(tt.dataURL)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, img)
		})
	}
}
