package formdatax

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/clinia/formdatax/errorx"
	"github.com/clinia/formdatax/filex"
	"github.com/clinia/formdatax/jsonx"
	"github.com/clinia/formdatax/loggerx"
	"github.com/clinia/formdatax/mimex"
)

// crlf is the line terminator between every structural line of the body,
// per the multipart/form-data wire convention.
const crlf = "\r\n"

// fileFieldName is the field name used for parts added from a file path.
const fileFieldName = "file"

// Builder accumulates multipart/form-data parts in insertion order and
// renders them into a request body on demand. Part order is preserved in
// the rendered body; servers may rely on it.
//
// A Builder is not safe for concurrent use; callers must not mutate one
// instance from multiple goroutines.
type Builder struct {
	boundary string
	parts    []string
	err      error

	resolver  mimex.Resolver
	reader    filex.Reader
	marshaler jsonx.Marshaler
	logger    *loggerx.Logger

	validateNames bool
}

// New returns an empty Builder with a fresh random boundary.
func New(opts ...Option) *Builder {
	b := &Builder{
		boundary:  uuid.NewString(),
		resolver:  mimex.NewResolver(),
		reader:    filex.OsReader(),
		marshaler: jsonx.NewMarshaler(),
		logger:    loggerx.Noop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromFile returns a Builder already populated with a single part read
// from the given file path. The read failure, if any, is returned directly.
func NewFromFile(path string, opts ...Option) (*Builder, error) {
	b := New(opts...).AddFilePath(path)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// AddField appends one text part. A field with an empty value is silently
// skipped so that placeholder fields never reach the wire body; this is
// policy, not an error.
//
// The name is inserted into the Content-Disposition line as-is. Callers
// must supply names free of quote and line-break characters unless
// WithNameValidation is enabled.
func (b *Builder) AddField(name, value string) *Builder {
	if b.err != nil {
		return b
	}
	if value == "" {
		b.logger.Debug("skipping field with empty value", slog.String("name", name))
		return b
	}
	if err := b.checkNames(name); err != nil {
		return b.fail(err)
	}

	b.parts = append(b.parts, renderField(b.boundary, name, value))
	b.logger.Debug("added field part", slog.String("name", name))
	return b
}

// AddFile appends exactly one file part, even when content is empty: an
// empty file is a meaningful upload, unlike an empty field.
//
// Content is carried byte-for-byte. Part fragments are Go strings, which
// preserve every byte value 0x00-0xFF losslessly, so arbitrary binary data
// survives the line-oriented assembly unchanged; Body and BodyBytes never
// re-encode it.
func (b *Builder) AddFile(name, filename, mimeType string, content []byte) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkNames(name, filename); err != nil {
		return b.fail(err)
	}

	b.parts = append(b.parts, renderFile(b.boundary, name, filename, mimeType, content))
	b.logger.Debug("added file part",
		slog.String("name", name),
		slog.String("filename", filename),
		slog.String("mimeType", mimeType),
		slog.Int("size", len(content)),
	)
	return b
}

// AddFilePath reads the file at path through the file reader collaborator
// and appends it as a file part named "file", with the path's final
// segment as filename and its MIME type resolved from that segment.
//
// An empty path is a no-op, mirroring AddField's empty-skip policy. A read
// failure is fatal: it is recorded unmodified and surfaced through Err,
// and all subsequent mutators become no-ops.
func (b *Builder) AddFilePath(path string) *Builder {
	if b.err != nil {
		return b
	}
	if path == "" {
		b.logger.Debug("skipping empty file path")
		return b
	}

	content, err := b.reader.ReadFile(path)
	if err != nil {
		b.logger.WithError(err).Warn("file read failed", slog.String("path", path))
		return b.fail(err)
	}

	filename := filepath.Base(path)
	return b.AddFile(fileFieldName, filename, b.resolver.TypeByFilename(filename), content)
}

// AddObject serializes obj through the marshaler collaborator and forwards
// the result to AddField. A nil obj is a no-op. The serialized form of an
// empty object is the non-empty text "{}", so it is not skipped.
func (b *Builder) AddObject(name string, obj any) *Builder {
	if b.err != nil {
		return b
	}
	if obj == nil {
		b.logger.Debug("skipping nil object", slog.String("name", name))
		return b
	}

	data, err := b.marshaler.Marshal(obj)
	if err != nil {
		b.logger.WithError(err).Warn("object serialization failed", slog.String("name", name))
		return b.fail(err)
	}

	return b.AddField(name, string(data))
}

// Body renders the accumulated parts into the finished body. It is a pure
// projection of the current parts: it never mutates the Builder and
// returns the same value until the next successful add.
//
// With zero parts the result is the empty string, not a malformed body;
// callers must check Len before using it as a request body. Otherwise the
// body always ends with the closing delimiter "--<boundary>--" followed
// by CRLF.
func (b *Builder) Body() string {
	if len(b.parts) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(b.parts, crlf))
	sb.WriteString(crlf)
	sb.WriteString("--")
	sb.WriteString(b.boundary)
	sb.WriteString("--")
	sb.WriteString(crlf)
	return sb.String()
}

// BodyBytes returns Body as raw bytes, ready to be sent as a request body.
func (b *Builder) BodyBytes() []byte {
	return []byte(b.Body())
}

// Boundary returns the boundary token, generated once at construction and
// immutable thereafter. The builder never emits the Content-Type header
// itself; callers build it from this token.
func (b *Builder) Boundary() string {
	return b.boundary
}

// ContentType returns the value for the Content-Type request header
// matching this builder's body.
func (b *Builder) ContentType() string {
	return "multipart/form-data; boundary=" + b.boundary
}

// Len returns the number of accumulated parts.
func (b *Builder) Len() int {
	return len(b.parts)
}

// Err returns the first fatal error recorded by a mutator, or nil. Once an
// error is recorded the builder is poisoned: further mutators are no-ops.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) *Builder {
	b.err = err
	return b
}

func (b *Builder) checkNames(names ...string) error {
	if !b.validateNames {
		return nil
	}
	for _, n := range names {
		if strings.ContainsAny(n, "\"\r\n") {
			return errorx.InvalidArgumentErrorf("part name %q contains quote or line-break characters", n)
		}
	}
	return nil
}
