package base64_test

import (
	"skyline/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

const pixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: pixelPNG, expected: "image/png"},
		{name: "text plain", input: "data:text/plain;base64,SGVsbG8gV29ybGQ=", expected: "text/plain"},
		{name: "parameters are kept", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", expected: "image/svg+xml;charset=utf-8"},
		{name: "empty string", input: "", expected: ""},
		{name: "no data prefix", input: "image/png;base64,iVBORw0KGgo=", expected: ""},
		{name: "no base64 marker", input: "data:image/png,iVBORw0KGgo=", expected: ""},
		{name: "missing media type", input: "data:;base64,", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")

	assert.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "Hello World", string(data))

	_, _, err = base64.Decode("not a data uri")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)

	_, _, err = base64.Decode("data:image/png;base64,***")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
}

func TestDecodedLen(t *testing.T) {
	assert.Equal(t, len("Hello World"), base64.DecodedLen("data:text/plain;base64,SGVsbG8gV29ybGQ="))
	assert.Equal(t, len("plain"), base64.DecodedLen("plain"))
}
