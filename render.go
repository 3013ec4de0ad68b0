package formdatax

import "strings"

// renderField produces a text part fragment:
//
//	--<boundary>
//	Content-Disposition: form-data; name="<name>"
//	<blank line>
//	<value>
//
// Fragments carry no trailing CRLF; Body supplies the terminator that
// separates consecutive parts.
func renderField(boundary, name, value string) string {
	var sb strings.Builder
	sb.Grow(len(boundary) + len(name) + len(value) + 48)
	sb.WriteString("--")
	sb.WriteString(boundary)
	sb.WriteString(crlf)
	sb.WriteString(`Content-Disposition: form-data; name="`)
	sb.WriteString(name)
	sb.WriteString(`"`)
	sb.WriteString(crlf)
	sb.WriteString(crlf)
	sb.WriteString(value)
	return sb.String()
}

// renderFile produces a file part fragment: same framing as renderField
// plus a filename in the disposition and a Content-Type header line. The
// content region may be empty.
func renderFile(boundary, name, filename, mimeType string, content []byte) string {
	var sb strings.Builder
	sb.Grow(len(boundary) + len(name) + len(filename) + len(mimeType) + len(content) + 80)
	sb.WriteString("--")
	sb.WriteString(boundary)
	sb.WriteString(crlf)
	sb.WriteString(`Content-Disposition: form-data; name="`)
	sb.WriteString(name)
	sb.WriteString(`"; filename="`)
	sb.WriteString(filename)
	sb.WriteString(`"`)
	sb.WriteString(crlf)
	sb.WriteString("Content-Type: ")
	sb.WriteString(mimeType)
	sb.WriteString(crlf)
	sb.WriteString(crlf)
	sb.Write(content)
	return sb.String()
}
