package formdatax

import (
	"github.com/clinia/formdatax/filex"
	"github.com/clinia/formdatax/jsonx"
	"github.com/clinia/formdatax/loggerx"
	"github.com/clinia/formdatax/mimex"
)

// Option is a named func that sets custom collaborators or policies on a
// Builder at construction time.
type Option func(*Builder)

// WithMIMEResolver replaces the resolver used by AddFilePath to map a
// filename to a content type.
func WithMIMEResolver(r mimex.Resolver) Option {
	return func(b *Builder) {
		b.resolver = r
	}
}

// WithFileReader replaces the filesystem reader used by AddFilePath.
func WithFileReader(r filex.Reader) Option {
	return func(b *Builder) {
		b.reader = r
	}
}

// WithMarshaler replaces the serializer used by AddObject.
func WithMarshaler(m jsonx.Marshaler) Option {
	return func(b *Builder) {
		b.marshaler = m
	}
}

// WithLogger attaches a logger; the default builder is silent.
func WithLogger(l *loggerx.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithNameValidation rejects part names and filenames containing quote or
// CR/LF characters, which would otherwise break header framing. Off by
// default: names are inserted as-is.
func WithNameValidation() Option {
	return func(b *Builder) {
		b.validateNames = true
	}
}
