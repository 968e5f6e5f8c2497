package response

import (
	"regexp"
	"strings"

	"github.com/aretw0/pastebutton/pkg/domain"
)

var (
	// "<prefix>: <detail>" emphasizes the text before the first ": ".
	structuredPattern = regexp.MustCompile(`(.+?)(: .+)`)
	// "error: <category>: <detail>" emphasizes the category.
	legacyPattern = regexp.MustCompile(`error: (.+?)(: .+)`)
)

const (
	noImagePhrase       = "no image found in clipboard"
	legacyNoImagePrefix = "error: no image"
)

// FormatNotification builds the user-facing notification for an error response.
func FormatNotification(resp domain.Response) domain.Notification {
	return domain.Notification{
		Icon:     domain.NotificationIcon,
		Markdown: formatMessage(resp),
	}
}

func formatMessage(resp domain.Response) string {
	if resp.Legacy {
		if strings.HasPrefix(resp.Message, legacyNoImagePrefix) {
			return domain.NoImageNotification
		}
		return legacyPattern.ReplaceAllString(resp.Message, "**${1}**${2}")
	}

	if strings.Contains(strings.ToLower(resp.Message), noImagePhrase) {
		return domain.NoImageNotification
	}
	return structuredPattern.ReplaceAllString(resp.Message, "**${1}**${2}")
}
