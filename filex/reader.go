package filex

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

// Reader reads a whole file into memory. It is the filesystem collaborator
// of the form-data builder; failures are returned unmodified so callers
// can classify them.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

type aferoReader struct {
	fs afero.Fs
}

var _ Reader = (*aferoReader)(nil)

// NewReader returns a Reader backed by the given afero filesystem. Tests
// typically pass afero.NewMemMapFs().
func NewReader(fsys afero.Fs) Reader {
	return &aferoReader{fs: fsys}
}

// OsReader returns a Reader over the host filesystem.
func OsReader() Reader {
	return NewReader(afero.NewOsFs())
}

func (r *aferoReader) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(r.fs, path)
}

// IsNotFound reports whether err denotes a missing file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermission reports whether err denotes a permission failure.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
