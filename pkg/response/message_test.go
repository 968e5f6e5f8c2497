package response_test

import (
	"testing"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/response"
	"github.com/stretchr/testify/assert"
)

func TestFormatNotification(t *testing.T) {
	tests := []struct {
		name string
		resp domain.Response
		want string
	}{
		{
			name: "structured no image",
			resp: domain.ErrorResponse("No image found in clipboard", false),
			want: domain.NoImageNotification,
		},
		{
			name: "structured no image is case-insensitive",
			resp: domain.ErrorResponse("Oops: NO IMAGE FOUND IN CLIPBOARD.", false),
			want: domain.NoImageNotification,
		},
		{
			name: "structured emphasizes prefix",
			resp: domain.ErrorResponse("NotAllowedError: Read permission denied.", false),
			want: "**NotAllowedError**: Read permission denied.",
		},
		{
			name: "structured emphasizes up to first separator",
			resp: domain.ErrorResponse("TypeError: bad: worse", false),
			want: "**TypeError**: bad: worse",
		},
		{
			name: "structured without separator",
			resp: domain.ErrorResponse("Unknown error", false),
			want: "Unknown error",
		},
		{
			name: "legacy no image",
			resp: domain.ErrorResponse("error: no image in clipboard", true),
			want: domain.NoImageNotification,
		},
		{
			name: "legacy emphasizes category",
			resp: domain.ErrorResponse("error: NotAllowedError: denied", true),
			want: "**NotAllowedError**: denied",
		},
		{
			name: "legacy without category",
			resp: domain.ErrorResponse("error: something broke", true),
			want: "error: something broke",
		},
		{
			name: "legacy phrase only matches prefix",
			resp: domain.ErrorResponse("error: x: No image found in clipboard", true),
			want: "**x**: No image found in clipboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := response.FormatNotification(tt.resp)
			assert.Equal(t, domain.NotificationIcon, n.Icon)
			assert.Equal(t, tt.want, n.Markdown)
		})
	}
}
