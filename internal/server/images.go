package server

import "encoding/base64"

// encodeDataURI packs raw image bytes into a self-contained data URI.
func encodeDataURI(mimeType string, image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}

// pngDataURI wraps image bytes the model already returns base64-encoded.
func pngDataURI(encoded string) string {
	return "data:image/png;base64," + encoded
}
