package server

import (
	"errors"
	"log"
	"net/http"

	"prompt-library/internal/library"
)

type createPromptRequest struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	Thumbnail    string `json:"thumbnail"`
	NegativeText string `json:"negativeText"`
}

type updatePromptRequest struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	NegativeText string `json:"negativeText"`
}

// persistWarning is reported alongside a successful mutation whose durable
// write failed: the in-memory change stands, durability is uncertain.
const persistWarning = "the change was applied but could not be saved durably"

func (s *Server) handleListPrompts(w http.ResponseWriter, r *http.Request) {
	sortBy := library.SortNewest
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, ok := library.ParseSortOption(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort option")
			return
		}
		sortBy = parsed
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prompts": s.store.List(sortBy),
	})
}

func (s *Server) handleCreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req createPromptRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	prompt, err := s.store.Create(req.Title, req.Text, req.Thumbnail, req.NegativeText)
	var validationErr *library.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	resp := map[string]any{"prompt": prompt}
	if err != nil {
		log.Printf("prompt created but not persisted id=%s: %v", prompt.ID, err)
		resp["warning"] = persistWarning
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdatePrompt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req updatePromptRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := s.store.Update(id, req.Title, req.Text, req.NegativeText)
	var validationErr *library.ValidationError
	var notFoundErr *library.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	case err != nil:
		log.Printf("prompt updated but not persisted id=%s: %v", id, err)
		writeJSON(w, http.StatusOK, map[string]string{"warning": persistWarning})
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleDeletePrompt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Delete(id); err != nil {
		log.Printf("prompt deleted but not persisted id=%s: %v", id, err)
		writeJSON(w, http.StatusOK, map[string]string{"warning": persistWarning})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
