package library

import "strings"

// MaxThumbnailBytes is the inclusive ceiling for an uploaded thumbnail.
// A file of exactly this size is still accepted.
const MaxThumbnailBytes = 2 << 20

// FileInfo describes a candidate thumbnail before its bytes are read.
type FileInfo struct {
	Size int64
	MIME string
}

// CheckThumbnail validates a user-supplied file descriptor. Any declared
// image/* type passes; the subtype is not restricted here.
func CheckThumbnail(file FileInfo) error {
	if file.Size > MaxThumbnailBytes {
		return &ValidationError{Field: "thumbnail", Reason: ReasonTooLarge}
	}
	mime := strings.ToLower(strings.TrimSpace(file.MIME))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !strings.HasPrefix(mime, "image/") || mime == "image/" {
		return &ValidationError{Field: "thumbnail", Reason: ReasonNotAnImage}
	}
	return nil
}
