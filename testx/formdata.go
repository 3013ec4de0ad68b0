package testx

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/samber/lo"

	"github.com/clinia/formdatax/errorx"
)

// FileToUpload represents a file that is part of the multipart form data.
type FileToUpload struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// FormData represents the data for a multipart/form-data request.
type FormData struct {
	Fields map[string]string
	Files  []FileToUpload
}

// ParseFormData decodes a rendered multipart/form-data body back into its
// fields and files through mime/multipart, preserving file bytes exactly.
// It is the round-trip oracle for builder tests: whatever went in must
// come back out unchanged.
func ParseFormData(boundary, body string) (*FormData, error) {
	fd := &FormData{Fields: map[string]string{}}
	if body == "" {
		return fd, nil
	}

	r := multipart.NewReader(strings.NewReader(body), boundary)
	for {
		part, err := r.NextRawPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errorx.InternalErrorf("malformed form-data body: %s", err)
		}

		content, err := io.ReadAll(part)
		if err != nil {
			return nil, errorx.InternalErrorf("unreadable part %q: %s", part.FormName(), err)
		}

		if part.FileName() == "" {
			fd.Fields[part.FormName()] = string(content)
			continue
		}

		fd.Files = append(fd.Files, FileToUpload{
			FieldName:   part.FormName(),
			FileName:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Content:     content,
		})
	}

	return fd, nil
}

// FileNames returns the file part names in body order.
func (f *FormData) FileNames() []string {
	return lo.Map(f.Files, func(file FileToUpload, _ int) string {
		return file.FileName
	})
}

// File returns the first file part with the given field name.
func (f *FormData) File(fieldName string) (FileToUpload, bool) {
	return lo.Find(f.Files, func(file FileToUpload) bool {
		return file.FieldName == fieldName
	})
}
