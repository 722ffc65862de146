package handler

import (
	"encoding/json"
	"net/http"

	"apnidisha/internal/model"
	"apnidisha/internal/repository"
)

// ContentHandler handles guidance content endpoints.
type ContentHandler struct {
	repo repository.ContentRepo
}

// NewContentHandler creates a new content handler.
func NewContentHandler(repo repository.ContentRepo) *ContentHandler {
	return &ContentHandler{repo: repo}
}

// List handles GET /api/content.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/content (admin).
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var content model.Content
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if content.Title == "" {
		writeError(w, http.StatusBadRequest, "missing content title")
		return
	}

	id, err := h.repo.Create(r.Context(), &content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Content added successfully",
		"id":      id,
	})
}

// StreamHandler handles education stream endpoints.
type StreamHandler struct {
	repo repository.StreamRepo
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(repo repository.StreamRepo) *StreamHandler {
	return &StreamHandler{repo: repo}
}

// List handles GET /api/streams.
func (h *StreamHandler) List(w http.ResponseWriter, r *http.Request) {
	streams, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, streams)
}

// Create handles POST /api/streams (admin).
func (h *StreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var stream model.Stream
	if err := json.NewDecoder(r.Body).Decode(&stream); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if stream.Name == "" {
		writeError(w, http.StatusBadRequest, "missing stream name")
		return
	}

	id, err := h.repo.Create(r.Context(), &stream)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Stream added successfully",
		"id":      id,
	})
}
