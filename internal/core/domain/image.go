package domain

import "strings"

// LocalImage is a picked image before upload: a device URI, an optional MIME
// type and, when already read, the raw bytes.
type LocalImage struct {
	URI  string
	MIME string
	Data []byte
}

// FileName is the last path segment of the URI.
func (i *LocalImage) FileName() string {
	parts := strings.Split(i.URI, "/")
	return parts[len(parts)-1]
}

// ContentType defaults to image/jpeg when the picker gave no MIME type.
func (i *LocalImage) ContentType() string {
	if i.MIME == "" {
		return "image/jpeg"
	}
	return i.MIME
}
