package repository

import (
	"context"

	"github.com/Clara4555/ROOFTY/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/
// (an in-memory map store and a SQLite store).
//
// Absence is not an error: lookups return (nil, nil) when the id is unknown.

type PropertyRepo interface {
	// GetProperty returns a property by id regardless of its active flag, so
	// detail pages stay reachable for delisted properties.
	GetProperty(ctx context.Context, id int64) (*models.Property, error)

	// ListProperties returns active properties in insertion order.
	ListProperties(ctx context.Context) ([]models.Property, error)

	// ListFeaturedProperties returns active, featured properties in insertion order.
	ListFeaturedProperties(ctx context.Context) ([]models.Property, error)

	// SearchProperties returns the active properties matching every supplied
	// criterion, in insertion order.
	SearchProperties(ctx context.Context, f models.SearchFilters) ([]models.Property, error)

	// CreateProperty assigns a fresh id and timestamps and returns the stored copy.
	CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error)

	// UpdateProperty shallow-merges the patch over the existing record and
	// resets UpdatedAt. Returns (nil, nil) when the id is unknown.
	UpdateProperty(ctx context.Context, id int64, patch models.PropertyPatch) (*models.Property, error)

	// DeleteProperty reports whether a record existed and was removed.
	DeleteProperty(ctx context.Context, id int64) (bool, error)
}

type TestimonialRepo interface {
	GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error)
}

type UserRepo interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
}
