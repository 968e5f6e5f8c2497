package domain

// ResponseKind discriminates the normalized bridge reply.
type ResponseKind int

const (
	ResponseEmpty ResponseKind = iota // No value, unknown discriminator or unsupported type
	ResponseClear                     // {type: "clear"}
	ResponseError                     // {type: "error", message} or a legacy "error..." string
	ResponseImage                     // {type: "image", data} or a legacy data URL string
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseClear:
		return "clear"
	case ResponseError:
		return "error"
	case ResponseImage:
		return "image"
	default:
		return "empty"
	}
}

// Response is the bridge reply after the wire format has been sniffed.
// Both the structured and the legacy string protocol end up here.
type Response struct {
	Kind ResponseKind

	// Message is set for ResponseError.
	Message string

	// DataURL is set for ResponseImage.
	DataURL string

	// Legacy marks replies that arrived as a plain string.
	// Error formatting differs between the two protocols.
	Legacy bool
}

// EmptyResponse is returned whenever there is nothing to act on.
func EmptyResponse() Response {
	return Response{Kind: ResponseEmpty}
}

// ClearResponse represents an explicit clear signal.
func ClearResponse() Response {
	return Response{Kind: ResponseClear}
}

// ErrorResponse represents an error reported by the browser side.
func ErrorResponse(message string, legacy bool) Response {
	return Response{Kind: ResponseError, Message: message, Legacy: legacy}
}

// ImageResponse represents a pasted image encoded as a data URL.
func ImageResponse(dataURL string, legacy bool) Response {
	return Response{Kind: ResponseImage, DataURL: dataURL, Legacy: legacy}
}
