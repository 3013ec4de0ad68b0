package mimex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeByFilename(t *testing.T) {
	r := NewResolver()

	testCases := []struct {
		name     string
		filename string
		expected string
	}{
		{
			name:     "should resolve a pinned extension",
			filename: "report.txt",
			expected: TypeTextPlain,
		},
		{
			name:     "should resolve regardless of extension case",
			filename: "photo.PNG",
			expected: "image/png",
		},
		{
			name:     "should resolve json",
			filename: "payload.json",
			expected: TypeJSON,
		},
		{
			name:     "should fall back to octet-stream for unknown extensions",
			filename: "blob.nope",
			expected: TypeOctetStream,
		},
		{
			name:     "should fall back to octet-stream without extension",
			filename: "Makefile",
			expected: TypeOctetStream,
		},
		{
			name:     "should resolve archives",
			filename: "archive.zip",
			expected: "application/zip",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.TypeByFilename(tc.filename))
		})
	}
}
