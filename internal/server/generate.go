package server

import (
	"log"
	"net/http"
	"strings"
)

type apiGenerateRequest struct {
	Prompt string `json:"prompt"`
}

// handleGenerate is the generation gateway: it brokers one stateless call
// to the external image model per request. Upstream failure detail stays
// in the server log; the client only sees a generic error.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req apiGenerateRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, `a "prompt" is required in the request body`)
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeError(w, http.StatusBadRequest, `a "prompt" is required in the request body`)
		return
	}

	log.Printf("generating thumbnail prompt=%q", prompt)
	encoded, err := s.imagen.generateThumbnail(r.Context(), prompt)
	if err != nil {
		log.Printf("image model call failed: %v", err)
		writeError(w, http.StatusInternalServerError, "the image could not be generated")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"imageUrl": pngDataURI(encoded),
	})
}
