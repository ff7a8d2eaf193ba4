package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Clara4555/ROOFTY/internal/auth"
	"github.com/Clara4555/ROOFTY/internal/repository/memory"
	"github.com/Clara4555/ROOFTY/internal/seed"
	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProperty(title string) *models.Property {
	return &models.Property{
		Title:        title,
		Description:  "desc",
		Price:        "1000",
		Type:         "rent",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    1,
		Sqft:         800,
		Address:      "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		Images:       []string{"a.jpg"},
		Amenities:    []string{"Gym"},
		Features:     []string{"Balcony"},
		IsActive:     true,
		Rating:       "4.0",
	}
}

func TestCreateProperty_AssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	first, err := s.CreateProperty(ctx, newProperty("one"))
	require.NoError(t, err)
	second, err := s.CreateProperty(ctx, newProperty("two"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	got, err := s.GetProperty(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *first, *got)
}

func TestCreateProperty_IDsNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	p, err := s.CreateProperty(ctx, newProperty("doomed"))
	require.NoError(t, err)

	ok, err := s.DeleteProperty(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	next, err := s.CreateProperty(ctx, newProperty("next"))
	require.NoError(t, err)
	assert.Greater(t, next.ID, p.ID)
}

func TestGetProperty_UnknownID(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	got, err := s.GetProperty(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInactiveHiddenFromListsButGettable(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	active := newProperty("active")
	active.IsFeatured = true
	_, err := s.CreateProperty(ctx, active)
	require.NoError(t, err)

	hidden := newProperty("hidden")
	hidden.IsActive = false
	hidden.IsFeatured = true
	created, err := s.CreateProperty(ctx, hidden)
	require.NoError(t, err)

	list, err := s.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "active", list[0].Title)

	featured, err := s.ListFeaturedProperties(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "active", featured[0].Title)

	results, err := s.SearchProperties(ctx, models.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// detail lookup still works for the inactive record
	got, err := s.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestListProperties_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.CreateProperty(ctx, newProperty(title))
		require.NoError(t, err)
	}

	list, err := s.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "b", list[1].Title)
	assert.Equal(t, "c", list[2].Title)
}

func TestSearchProperties_FalsyFiltersSkipped(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, seed.Apply(ctx, s, s))

	all, err := s.SearchProperties(ctx, models.SearchFilters{})
	require.NoError(t, err)

	zeroed, err := s.SearchProperties(ctx, models.SearchFilters{Bedrooms: 0, Bathrooms: 0, MinPrice: 0, MaxPrice: 0})
	require.NoError(t, err)
	assert.Equal(t, all, zeroed)
}

func TestSearchProperties_RentWithTwoBedrooms(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, seed.Apply(ctx, s, s))

	results, err := s.SearchProperties(ctx, models.SearchFilters{Type: "rent", Bedrooms: 2})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var lastID int64
	for _, p := range results {
		assert.Equal(t, "rent", p.Type)
		assert.GreaterOrEqual(t, p.Bedrooms, 2)
		assert.True(t, p.IsActive)
		assert.Greater(t, p.ID, lastID, "insertion order must be preserved")
		lastID = p.ID
	}
}

func TestUpdateProperty_MergesAndBumpsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	created, err := s.CreateProperty(ctx, newProperty("original"))
	require.NoError(t, err)

	title := "renamed"
	price := "2500"
	updated, err := s.UpdateProperty(ctx, created.ID, models.PropertyPatch{Title: &title, Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "2500", updated.Price)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	// unpatched fields survive
	assert.Equal(t, created.Bedrooms, updated.Bedrooms)
}

func TestUpdateProperty_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	created, err := s.CreateProperty(ctx, newProperty("only"))
	require.NoError(t, err)

	title := "ghost"
	updated, err := s.UpdateProperty(ctx, 999, models.PropertyPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)

	// the existing record is untouched
	got, err := s.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)

	list, err := s.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteProperty(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	created, err := s.CreateProperty(ctx, newProperty("gone"))
	require.NoError(t, err)

	ok, err := s.DeleteProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = s.DeleteProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadsReturnSnapshots(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	_, err := s.CreateProperty(ctx, newProperty("snap"))
	require.NoError(t, err)

	got, err := s.GetProperty(ctx, 1)
	require.NoError(t, err)
	got.Images[0] = "mutated.jpg"
	got.Title = "mutated"

	again, err := s.GetProperty(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", again.Images[0])
	assert.Equal(t, "snap", again.Title)
}

func TestConcurrentCreates_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.CreateProperty(ctx, newProperty("racer"))
			if err != nil {
				t.Error(err)
				return
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestTestimonials_ActiveFilter(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	_, err := s.CreateTestimonial(ctx, &models.Testimonial{Name: "A", Location: "X", Rating: 5, Comment: "great", IsActive: true})
	require.NoError(t, err)
	_, err = s.CreateTestimonial(ctx, &models.Testimonial{Name: "B", Location: "Y", Rating: 4, Comment: "ok", IsActive: false})
	require.NoError(t, err)

	all, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := s.ListActiveTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A", active[0].Name)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	// the store only ever sees the bcrypt hash, never the plaintext
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	created, err := s.CreateUser(ctx, &models.User{Username: "agent47", PasswordHash: hash})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byName, err := s.GetUserByUsername(ctx, "agent47")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)
	assert.NotEqual(t, "s3cret", byName.PasswordHash)
	assert.True(t, auth.CheckPassword(byName.PasswordHash, "s3cret"))
	assert.False(t, auth.CheckPassword(byName.PasswordHash, "wrong"))

	missing, err := s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
