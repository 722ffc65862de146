package handler

import (
	"encoding/json"
	"net/http"

	"apnidisha/internal/model"
	"apnidisha/internal/repository"
)

// CollegeHandler handles the college directory endpoints.
type CollegeHandler struct {
	repo repository.CollegeRepo
}

// NewCollegeHandler creates a new college handler.
func NewCollegeHandler(repo repository.CollegeRepo) *CollegeHandler {
	return &CollegeHandler{repo: repo}
}

// List handles GET /api/colleges. The total interest lets the frontend
// compute percentages.
func (h *CollegeHandler) List(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	totalInterest := 0
	for _, c := range colleges {
		totalInterest += c.Interest
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"data":          colleges,
		"totalInterest": totalInterest,
		"total":         len(colleges),
	})
}

// Create handles POST /api/colleges (admin).
func (h *CollegeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var college model.College
	if err := json.NewDecoder(r.Body).Decode(&college); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if college.Name == "" {
		writeError(w, http.StatusBadRequest, "missing college name")
		return
	}

	id, err := h.repo.Create(r.Context(), &college)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "College added successfully",
		"id":      id,
	})
}

// InterestBatchRequest is the body for POST /api/colleges/interest-batch.
type InterestBatchRequest struct {
	Interest map[string]int `json:"interest"`
}

// InterestBatch handles POST /api/colleges/interest-batch. Public: the
// frontend sends it via sendBeacon on page unload.
func (h *CollegeHandler) InterestBatch(w http.ResponseWriter, r *http.Request) {
	var req InterestBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Interest) == 0 {
		writeError(w, http.StatusBadRequest, "missing interest increments")
		return
	}

	if err := h.repo.IncrementInterest(r.Context(), req.Interest); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"updated": len(req.Interest),
	})
}
