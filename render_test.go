package formdatax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderField(t *testing.T) {
	t.Run("should frame the part without a trailing terminator", func(t *testing.T) {
		fragment := renderField("B", "name", "John Doe")
		assert.Equal(t, "--B\r\nContent-Disposition: form-data; name=\"name\"\r\n\r\nJohn Doe", fragment)
	})
}

func TestRenderFile(t *testing.T) {
	t.Run("should frame headers and content", func(t *testing.T) {
		fragment := renderFile("B", "file", "a.txt", "text/plain", []byte("hello"))
		assert.Equal(t, "--B\r\n"+
			"Content-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n"+
			"Content-Type: text/plain\r\n"+
			"\r\n"+
			"hello", fragment)
	})

	t.Run("should keep an empty content region", func(t *testing.T) {
		fragment := renderFile("B", "file", "empty.bin", "application/octet-stream", nil)
		assert.Equal(t, "--B\r\n"+
			"Content-Disposition: form-data; name=\"file\"; filename=\"empty.bin\"\r\n"+
			"Content-Type: application/octet-stream\r\n"+
			"\r\n", fragment)
	})

	t.Run("should preserve raw bytes", func(t *testing.T) {
		content := []byte{0x00, 0xFF, 0x0D, 0x0A}
		fragment := renderFile("B", "file", "b.bin", "application/octet-stream", content)
		assert.Equal(t, string(content), fragment[len(fragment)-len(content):])
	})
}
