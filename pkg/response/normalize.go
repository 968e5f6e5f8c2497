package response

import (
	"reflect"
	"strings"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Normalize classifies a raw bridge value.
// It never fails: anything it cannot make sense of becomes an empty response.
func Normalize(raw any) domain.Response {
	if raw == nil {
		return domain.EmptyResponse()
	}

	if s, ok := raw.(string); ok {
		return normalizeLegacy(s)
	}

	if reflect.ValueOf(raw).Kind() == reflect.Map {
		return normalizeStructured(raw)
	}

	return domain.EmptyResponse()
}

// normalizeStructured classifies on the exact "type" key. A message or data
// field of the wrong type counts as absent; it never spoils the record.
func normalizeStructured(raw any) domain.Response {
	var fields map[string]any
	if err := mapstructure.Decode(raw, &fields); err != nil {
		return domain.EmptyResponse()
	}

	kind, _ := fields[domain.FieldType].(string)
	switch kind {
	case domain.TypeClear:
		return domain.ClearResponse()
	case domain.TypeError:
		message, ok := fields[domain.FieldMessage].(string)
		if !ok {
			message = domain.UnknownErrorMessage
		}
		return domain.ErrorResponse(message, false)
	case domain.TypeImage:
		data, _ := fields[domain.FieldData].(string)
		if data == "" {
			return domain.EmptyResponse()
		}
		return domain.ImageResponse(data, false)
	default:
		return domain.EmptyResponse()
	}
}

// normalizeLegacy handles the string protocol. Any string that is not an
// error is taken to be a data URL, including the empty string.
func normalizeLegacy(s string) domain.Response {
	if strings.HasPrefix(s, domain.TypeError) {
		return domain.ErrorResponse(s, true)
	}
	return domain.ImageResponse(s, true)
}
