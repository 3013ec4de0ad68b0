package loggerx

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	newBufferLogger := func() (*Logger, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return New(slog.New(h)), buf
	}

	t.Run("should log attrs at the requested level", func(t *testing.T) {
		l, buf := newBufferLogger()
		l.Debug("part added", slog.String("name", "file"))

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "msg=\"part added\"")
		assert.Contains(t, out, "name=file")
	})

	t.Run("should carry the error attr", func(t *testing.T) {
		l, buf := newBufferLogger()
		l.WithError(errors.New("boom")).Warn("read failed")

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "error=boom")
	})

	t.Run("should carry fields across calls", func(t *testing.T) {
		l, buf := newBufferLogger()
		l.WithFields(slog.String("component", "builder")).Info("ready")

		assert.Contains(t, buf.String(), "component=builder")
	})

	t.Run("noop logger should discard everything", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Noop().Error("dropped")
		})
	})
}
