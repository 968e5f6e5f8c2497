package domain

import "errors"

// ErrMalformedDataURL is returned when a data URL has no single ";base64," separator.
var ErrMalformedDataURL = errors.New("malformed data url")

// ErrUndecodableImage is returned when the payload is not valid base64 or not a known image format.
var ErrUndecodableImage = errors.New("undecodable image")
