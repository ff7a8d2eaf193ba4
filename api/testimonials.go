package api

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/Clara4555/ROOFTY/internal/schema"
	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

type TestimonialsHandler struct {
	repo    repository.TestimonialRepo
	schemas *schema.Registry
}

func NewTestimonialsHandler(repo repository.TestimonialRepo, schemas *schema.Registry) *TestimonialsHandler {
	return &TestimonialsHandler{repo: repo, schemas: schemas}
}

func (h *TestimonialsHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListActiveTestimonials(r.Context())
	if err != nil {
		logger.Error("list testimonials", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	writeJSON(w, items, http.StatusOK)
}

type createTestimonialRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment"`
	Avatar   string `json:"avatar"`
	IsActive *bool  `json:"isActive"`
}

func (h *TestimonialsHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid testimonial data")
		return
	}

	if err := h.schemas.ValidateTestimonial(r.Context(), body); err != nil {
		logger.Info("testimonial payload rejected", slog.Any("err", err))
		writeMessage(w, http.StatusBadRequest, "Invalid testimonial data")
		return
	}

	var req createTestimonialRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid testimonial data")
		return
	}

	t := models.Testimonial{
		Name:     req.Name,
		Location: req.Location,
		Rating:   5,
		Comment:  req.Comment,
		Avatar:   req.Avatar,
		IsActive: true,
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	created, err := h.repo.CreateTestimonial(r.Context(), &t)
	if err != nil {
		logger.Error("create testimonial", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}
	writeJSON(w, created, http.StatusCreated)
}
