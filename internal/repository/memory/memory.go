// Package memory implements the repository contracts over plain maps. It is
// the default store: state lives for the life of the process and is seeded
// from fixtures at startup.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

// Store holds one keyed collection per entity type. Each collection has its
// own monotonic id counter starting at 1; ids are never reused, even after
// delete. A single RWMutex guards all collections so concurrent creates
// cannot race the counters.
type Store struct {
	mu           sync.RWMutex
	properties   map[int64]models.Property
	testimonials map[int64]models.Testimonial
	users        map[int64]models.User

	nextPropertyID    int64
	nextTestimonialID int64
	nextUserID        int64
}

var _ repository.PropertyRepo = (*Store)(nil)
var _ repository.TestimonialRepo = (*Store)(nil)
var _ repository.UserRepo = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		properties:        make(map[int64]models.Property),
		testimonials:      make(map[int64]models.Testimonial),
		users:             make(map[int64]models.User),
		nextPropertyID:    1,
		nextTestimonialID: 1,
		nextUserID:        1,
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// cloneProperty deep-copies the slice fields so callers get independent
// snapshots; mutating a returned record must not bypass the store.
func cloneProperty(p models.Property) models.Property {
	p.Images = slices.Clone(p.Images)
	p.Amenities = slices.Clone(p.Amenities)
	p.Features = slices.Clone(p.Features)
	return p
}

// sortedIDs returns map keys ascending. Ids are allocated monotonically and
// never reused, so ascending id order is insertion order.
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Properties

func (s *Store) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, nil
	}
	p = cloneProperty(p)
	return &p, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.collectProperties(func(p models.Property) bool { return p.IsActive })
}

func (s *Store) ListFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	return s.collectProperties(func(p models.Property) bool { return p.IsActive && p.IsFeatured })
}

func (s *Store) SearchProperties(ctx context.Context, f models.SearchFilters) ([]models.Property, error) {
	return s.collectProperties(func(p models.Property) bool { return p.IsActive && f.Matches(p) })
}

func (s *Store) collectProperties(keep func(models.Property) bool) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Property{}
	for _, id := range sortedIDs(s.properties) {
		if p := s.properties[id]; keep(p) {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneProperty(*p)
	stored.ID = s.nextPropertyID
	s.nextPropertyID++
	ts := now()
	stored.CreatedAt = ts
	stored.UpdatedAt = ts
	s.properties[stored.ID] = stored

	stored = cloneProperty(stored)
	return &stored, nil
}

func (s *Store) UpdateProperty(ctx context.Context, id int64, patch models.PropertyPatch) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.properties[id]
	if !ok {
		return nil, nil
	}

	updated := patch.Apply(existing)
	updated.UpdatedAt = now()
	s.properties[id] = updated

	updated = cloneProperty(updated)
	return &updated, nil
}

func (s *Store) DeleteProperty(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return false, nil
	}
	delete(s.properties, id)
	return true, nil
}

// Testimonials

func (s *Store) GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.testimonials[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.collectTestimonials(func(models.Testimonial) bool { return true })
}

func (s *Store) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.collectTestimonials(func(t models.Testimonial) bool { return t.IsActive })
}

func (s *Store) collectTestimonials(keep func(models.Testimonial) bool) ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Testimonial{}
	for _, id := range sortedIDs(s.testimonials) {
		if t := s.testimonials[id]; keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *t
	stored.ID = s.nextTestimonialID
	s.nextTestimonialID++
	stored.CreatedAt = now()
	s.testimonials[stored.ID] = stored
	return &stored, nil
}

// Users

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *u
	stored.ID = s.nextUserID
	s.nextUserID++
	s.users[stored.ID] = stored
	return &stored, nil
}
