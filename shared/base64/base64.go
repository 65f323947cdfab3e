// Package base64 reads image payloads sent as data URIs ("data:image/png;base64,....").
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrInvalidDataURI = errors.New("image must be a base64 data URI")

func split(dataURI string) (contentType, payload string, ok bool) {
	if !strings.HasPrefix(dataURI, dataPrefix) {
		return "", "", false
	}

	header, payload, found := strings.Cut(strings.TrimPrefix(dataURI, dataPrefix), base64Marker)
	if !found || header == "" {
		return "", "", false
	}

	return header, payload, true
}

// GetContentType returns the media type of a data URI, or "" when the value is not one.
func GetContentType(dataURI string) string {
	contentType, _, _ := split(dataURI)

	return contentType
}

// DecodedLen is the byte size of the decoded payload, without decoding it.
func DecodedLen(dataURI string) int {
	_, payload, ok := split(dataURI)
	if !ok {
		return len(dataURI)
	}

	return stdBase64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload, "=")
}

func Decode(dataURI string) (contentType string, data []byte, err error) {
	contentType, payload, ok := split(dataURI)
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}

	return contentType, data, nil
}
