package mimex

import (
	"mime"
	"path/filepath"
	"strings"
)

const (
	TypeOctetStream = "application/octet-stream"
	TypeJSON        = "application/json"
	TypeTextPlain   = "text/plain"
	TypeFormData    = "multipart/form-data"
)

// Resolver maps a filename to a MIME content type. Implementations never
// fail: an unresolvable name yields a best-effort default.
type Resolver interface {
	TypeByFilename(filename string) string
}

// typesByExtension pins the types the builder cares about so resolution
// does not depend on the host's mime registry.
var typesByExtension = map[string]string{
	".csv":  "text/csv",
	".gif":  "image/gif",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".json": TypeJSON,
	".pdf":  "application/pdf",
	".png":  "image/png",
	".txt":  TypeTextPlain,
	".xml":  "application/xml",
	".zip":  "application/zip",
}

type resolver struct{}

// NewResolver returns the default Resolver: the pinned extension table
// first, then the platform registry, then application/octet-stream.
func NewResolver() Resolver {
	return resolver{}
}

func (resolver) TypeByFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := typesByExtension[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return TypeOctetStream
}
