package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/Clara4555/ROOFTY/internal/schema"
	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/Clara4555/ROOFTY/pkg/repository"
	"github.com/gorilla/mux"
)

type PropertiesHandler struct {
	repo    repository.PropertyRepo
	schemas *schema.Registry
}

func NewPropertiesHandler(repo repository.PropertyRepo, schemas *schema.Registry) *PropertiesHandler {
	return &PropertiesHandler{repo: repo, schemas: schemas}
}

func (h *PropertiesHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.repo.ListProperties(r.Context())
	if err != nil {
		logger.Error("list properties", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}
	writeJSON(w, props, http.StatusOK)
}

func (h *PropertiesHandler) FeaturedProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.repo.ListFeaturedProperties(r.Context())
	if err != nil {
		logger.Error("list featured properties", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch featured properties")
		return
	}
	writeJSON(w, props, http.StatusOK)
}

func (h *PropertiesHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	filters := models.ParseFilters(r.URL.Query())

	props, err := h.repo.SearchProperties(r.Context(), filters)
	if err != nil {
		logger.Error("search properties", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}
	writeJSON(w, props, http.StatusOK)
}

func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	// Non-numeric ids fall through to the same 404 an unknown id gets.
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Property not found")
		return
	}

	p, err := h.repo.GetProperty(r.Context(), id)
	if err != nil {
		logger.Error("get property", slog.Int64("id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch property")
		return
	}
	if p == nil {
		writeMessage(w, http.StatusNotFound, "Property not found")
		return
	}
	writeJSON(w, p, http.StatusOK)
}

// createPropertyRequest mirrors the property write schema. Fields whose
// defaults differ from the Go zero value are pointers so "absent" and
// "explicitly set" stay distinguishable.
type createPropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Type         string   `json:"type"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Sqft         int      `json:"sqft"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Latitude     string   `json:"latitude"`
	Longitude    string   `json:"longitude"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Features     []string `json:"features"`
	YearBuilt    int      `json:"yearBuilt"`
	Parking      int      `json:"parking"`
	IsActive     *bool    `json:"isActive"`
	IsFeatured   bool     `json:"isFeatured"`
	Rating       *string  `json:"rating"`
	AgentName    string   `json:"agentName"`
	AgentPhone   string   `json:"agentPhone"`
	AgentEmail   string   `json:"agentEmail"`
}

func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	if err := h.schemas.ValidateProperty(r.Context(), body); err != nil {
		logger.Info("property payload rejected", slog.Any("err", err))
		writeMessage(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	var req createPropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	p := models.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Type:         req.Type,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Sqft:         req.Sqft,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Images:       emptyIfNil(req.Images),
		Amenities:    emptyIfNil(req.Amenities),
		Features:     emptyIfNil(req.Features),
		YearBuilt:    req.YearBuilt,
		Parking:      req.Parking,
		IsActive:     true,
		IsFeatured:   req.IsFeatured,
		Rating:       "0.0",
		AgentName:    req.AgentName,
		AgentPhone:   req.AgentPhone,
		AgentEmail:   req.AgentEmail,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}

	created, err := h.repo.CreateProperty(r.Context(), &p)
	if err != nil {
		logger.Error("create property", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to create property")
		return
	}
	writeJSON(w, created, http.StatusCreated)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
