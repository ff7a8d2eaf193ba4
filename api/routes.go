package api

import (
	"github.com/Clara4555/ROOFTY/internal/mail"
	"github.com/Clara4555/ROOFTY/internal/schema"
	"github.com/Clara4555/ROOFTY/pkg/repository"
	"github.com/gorilla/mux"
)

func SetupRoutes(version, buildTime string, props repository.PropertyRepo, tests repository.TestimonialRepo, schemas *schema.Registry, mailer mail.Mailer) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	propertiesHandler := NewPropertiesHandler(props, schemas)
	testimonialsHandler := NewTestimonialsHandler(tests, schemas)
	contactHandler := NewContactHandler(mailer)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Properties endpoints; the static paths must precede the {id} route.
	r.HandleFunc("/api/properties", propertiesHandler.ListProperties).Methods("GET")
	r.HandleFunc("/api/properties", propertiesHandler.CreateProperty).Methods("POST")
	r.HandleFunc("/api/properties/featured", propertiesHandler.FeaturedProperties).Methods("GET")
	r.HandleFunc("/api/properties/search", propertiesHandler.SearchProperties).Methods("GET")
	r.HandleFunc("/api/properties/{id}", propertiesHandler.GetProperty).Methods("GET")

	// Testimonials endpoints
	r.HandleFunc("/api/testimonials", testimonialsHandler.ListTestimonials).Methods("GET")
	r.HandleFunc("/api/testimonials", testimonialsHandler.CreateTestimonial).Methods("POST")

	// Contact form endpoint
	r.HandleFunc("/api/contact", contactHandler.SubmitContact).Methods("POST")

	return r
}
