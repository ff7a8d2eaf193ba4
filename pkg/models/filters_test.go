package models_test

import (
	"net/url"
	"testing"

	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProperty() models.Property {
	return models.Property{
		Title:        "Family Home with Garden",
		Price:        "625000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     3,
		Bathrooms:    2,
		City:         "Austin",
		IsActive:     true,
	}
}

func TestMatches_NoCriteria(t *testing.T) {
	f := models.SearchFilters{}
	assert.True(t, f.IsZero())
	assert.True(t, f.Matches(sampleProperty()))
}

func TestMatches_TypeAndCategory(t *testing.T) {
	p := sampleProperty()

	assert.True(t, models.SearchFilters{Type: "sale"}.Matches(p))
	assert.False(t, models.SearchFilters{Type: "rent"}.Matches(p))
	assert.True(t, models.SearchFilters{PropertyType: "house"}.Matches(p))
	assert.False(t, models.SearchFilters{PropertyType: "condo"}.Matches(p))
}

func TestMatches_CitySubstringCaseInsensitive(t *testing.T) {
	p := sampleProperty()

	assert.True(t, models.SearchFilters{City: "austin"}.Matches(p))
	assert.True(t, models.SearchFilters{City: "AUS"}.Matches(p))
	assert.False(t, models.SearchFilters{City: "Dallas"}.Matches(p))
}

func TestMatches_PriceBoundsInclusive(t *testing.T) {
	p := sampleProperty()

	assert.True(t, models.SearchFilters{MinPrice: 625000}.Matches(p))
	assert.True(t, models.SearchFilters{MaxPrice: 625000}.Matches(p))
	assert.False(t, models.SearchFilters{MinPrice: 625001}.Matches(p))
	assert.False(t, models.SearchFilters{MaxPrice: 624999}.Matches(p))
	assert.True(t, models.SearchFilters{MinPrice: 600000, MaxPrice: 700000}.Matches(p))
}

func TestMatches_UnparsablePriceExcludedWhenFiltered(t *testing.T) {
	p := sampleProperty()
	p.Price = "call for pricing"

	assert.False(t, models.SearchFilters{MinPrice: 1}.Matches(p))
	assert.True(t, models.SearchFilters{}.Matches(p))
}

func TestMatches_BedroomsAtLeast(t *testing.T) {
	p := sampleProperty()

	assert.True(t, models.SearchFilters{Bedrooms: 2}.Matches(p))
	assert.True(t, models.SearchFilters{Bedrooms: 3}.Matches(p))
	assert.False(t, models.SearchFilters{Bedrooms: 4}.Matches(p))
	// zero means "not supplied", identical to omitting the filter
	assert.True(t, models.SearchFilters{Bedrooms: 0}.Matches(p))
}

func TestParseFilters_Recognized(t *testing.T) {
	q := url.Values{}
	q.Set("type", "rent")
	q.Set("propertyType", "apartment")
	q.Set("city", "Manhattan")
	q.Set("minPrice", "1000")
	q.Set("maxPrice", "5000")
	q.Set("bedrooms", "2")
	q.Set("bathrooms", "1")

	f := models.ParseFilters(q)
	assert.Equal(t, models.SearchFilters{
		Type:         "rent",
		PropertyType: "apartment",
		City:         "Manhattan",
		MinPrice:     1000,
		MaxPrice:     5000,
		Bedrooms:     2,
		Bathrooms:    1,
	}, f)
}

func TestParseFilters_BadNumbersAreAbsent(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "abc")
	q.Set("bedrooms", "two")
	q.Set("bathrooms", "-1")

	f := models.ParseFilters(q)
	assert.True(t, f.IsZero())
}

func TestParseFilters_ZeroIsAbsent(t *testing.T) {
	q := url.Values{}
	q.Set("bedrooms", "0")
	q.Set("minPrice", "0")

	f := models.ParseFilters(q)
	assert.True(t, f.IsZero())
}

func TestValues_RoundTrip(t *testing.T) {
	f := models.SearchFilters{
		Type:     "sale",
		City:     "Portland",
		MinPrice: 250000.5,
		Bedrooms: 3,
	}

	got := models.ParseFilters(f.Values())
	require.Equal(t, f, got)
}

func TestValues_OmitsZeroFields(t *testing.T) {
	v := models.SearchFilters{Bedrooms: 2}.Values()

	assert.Equal(t, "2", v.Get("bedrooms"))
	_, hasType := v["type"]
	assert.False(t, hasType)
	_, hasMin := v["minPrice"]
	assert.False(t, hasMin)
}
