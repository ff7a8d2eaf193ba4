package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Clara4555/ROOFTY/api"
	"github.com/Clara4555/ROOFTY/internal/mail"
	"github.com/Clara4555/ROOFTY/internal/repository/memory"
	"github.com/Clara4555/ROOFTY/internal/schema"
	"github.com/Clara4555/ROOFTY/internal/seed"
	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

// newTestRouter wires the full router over a seeded memory store.
func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	if err := seed.Apply(context.Background(), store, store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	schemas, err := schema.New()
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	router := api.SetupRoutes("test", "now", store, store, schemas, mail.NewLogMailer(nil))
	return router, store
}

func decodeProperties(t *testing.T, w *httptest.ResponseRecorder) []models.Property {
	t.Helper()
	var out []models.Property
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestListProperties(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	props := decodeProperties(t, w)
	if len(props) != len(seed.Properties()) {
		t.Fatalf("expected %d properties got %d", len(seed.Properties()), len(props))
	}
	for i := 1; i < len(props); i++ {
		if props[i].ID <= props[i-1].ID {
			t.Fatalf("listing out of insertion order at index %d", i)
		}
	}
}

func TestFeaturedProperties(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/featured", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	props := decodeProperties(t, w)
	if len(props) == 0 {
		t.Fatal("expected at least one featured property")
	}
	for _, p := range props {
		if !p.IsFeatured {
			t.Fatalf("non-featured property in response: %+v", p)
		}
	}
}

func TestSearchProperties(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/search?type=rent&bedrooms=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	props := decodeProperties(t, w)
	if len(props) == 0 {
		t.Fatal("expected matches for rent with >=2 bedrooms")
	}
	for _, p := range props {
		if p.Type != "rent" || p.Bedrooms < 2 {
			t.Fatalf("result violates criteria: %+v", p)
		}
	}
}

func TestSearchProperties_IgnoresUnparsableParams(t *testing.T) {
	router, _ := newTestRouter(t)

	plain := httptest.NewRecorder()
	router.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/api/properties/search", nil))

	junk := httptest.NewRecorder()
	router.ServeHTTP(junk, httptest.NewRequest(http.MethodGet, "/api/properties/search?minPrice=abc&bedrooms=x", nil))

	if junk.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", junk.Code)
	}
	if plain.Body.String() != junk.Body.String() {
		t.Fatal("unparsable numeric params should behave like absent filters")
	}
}

func TestGetProperty(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var p models.Property
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected property 1 got %d", p.ID)
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/properties/99999", "/api/properties/abc"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Property not found") {
			t.Fatalf("%s: unexpected body %s", path, w.Body.String())
		}
	}
}

func TestCreateProperty(t *testing.T) {
	router, store := newTestRouter(t)

	payload := `{
		"title": "New Listing",
		"description": "Created through the API",
		"price": "315000",
		"type": "sale",
		"propertyType": "condo",
		"bedrooms": 2,
		"bathrooms": 2,
		"sqft": 1100,
		"address": "9 Harbor Way",
		"city": "Seattle",
		"state": "WA",
		"zipCode": "98101"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var created models.Property
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !created.IsActive {
		t.Fatal("isActive should default to true")
	}
	if created.Rating != "0.0" {
		t.Fatalf("rating should default to 0.0, got %q", created.Rating)
	}
	if created.Images == nil || created.Amenities == nil || created.Features == nil {
		t.Fatal("list fields should default to empty, not null")
	}

	stored, err := store.GetProperty(context.Background(), created.ID)
	if err != nil || stored == nil {
		t.Fatalf("created property not in store: %v %v", stored, err)
	}
}

func TestCreateProperty_InvalidPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing required fields", `{"title": "only a title"}`},
		{"wrong field type", `{"title":"x","description":"y","price":"1","type":"sale","propertyType":"house","bedrooms":"two","bathrooms":1,"sqft":10,"address":"a","city":"c","state":"s","zipCode":"z"}`},
		{"malformed json", `{not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Invalid property data") {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

// failingPropertyRepo forces the repository error paths.
type failingPropertyRepo struct {
	repository.PropertyRepo
}

func (failingPropertyRepo) ListProperties(ctx context.Context) ([]models.Property, error) {
	return nil, errors.New("boom")
}

func TestListProperties_StoreFailure(t *testing.T) {
	schemas, err := schema.New()
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	h := api.NewPropertiesHandler(failingPropertyRepo{}, schemas)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	w := httptest.NewRecorder()
	h.ListProperties(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to fetch properties") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
