package server

import (
	"net/http"

	"prompt-library/internal/config"
	"prompt-library/internal/library"
)

type Server struct {
	store  *library.Store
	cfg    config.Config
	imagen *imagenClient
}

func New(store *library.Store, cfg config.Config) *Server {
	return &Server{
		store:  store,
		cfg:    cfg,
		imagen: newImagenClient(cfg),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/prompts", s.handleListPrompts)
	mux.HandleFunc("POST /api/prompts", s.handleCreatePrompt)
	mux.HandleFunc("PUT /api/prompts/{id}", s.handleUpdatePrompt)
	mux.HandleFunc("DELETE /api/prompts/{id}", s.handleDeletePrompt)
	mux.HandleFunc("POST /api/thumbnails", s.handleUploadThumbnail)
	mux.HandleFunc("GET /", s.handleStatic)
	return mux
}
