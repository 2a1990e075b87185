package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"prompt-library/internal/library"
)

// The multipart envelope adds boundary and header bytes on top of the
// file itself.
const maxUploadBytes = library.MaxThumbnailBytes + 512*1024

// handleUploadThumbnail validates a user-supplied image and returns it as
// a data URI ready to attach to a prompt record.
func (s *Server) handleUploadThumbnail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `a "file" upload is required`)
		return
	}
	defer file.Close()

	mimeType := cleanMIME(header.Header.Get("Content-Type"))
	err = library.CheckThumbnail(library.FileInfo{
		Size: header.Size,
		MIME: mimeType,
	})
	var validationErr *library.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read the uploaded file")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"thumbnail": encodeDataURI(mimeType, data),
	})
}

func cleanMIME(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}
	return strings.ToLower(raw)
}
