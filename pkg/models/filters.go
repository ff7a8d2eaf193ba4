package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchFilters is the criteria object shared by the HTTP query string, the
// API handlers, and the stores. A zero value means "not supplied": an empty
// string or a 0 imposes no constraint, so bedrooms=0 is indistinguishable
// from omitting the bedroom filter.
type SearchFilters struct {
	Type         string  `json:"type,omitempty"`
	PropertyType string  `json:"propertyType,omitempty"`
	City         string  `json:"city,omitempty"`
	MinPrice     float64 `json:"minPrice,omitempty"`
	MaxPrice     float64 `json:"maxPrice,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"`
}

// IsZero reports whether no criteria are set.
func (f SearchFilters) IsZero() bool {
	return f == SearchFilters{}
}

// Matches evaluates every supplied criterion against p with AND semantics.
// It does not consider p.IsActive; callers filter visibility themselves.
func (f SearchFilters) Matches(p Property) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(f.City)) {
		return false
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return false
		}
		if f.MinPrice > 0 && price < f.MinPrice {
			return false
		}
		if f.MaxPrice > 0 && price > f.MaxPrice {
			return false
		}
	}
	if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
		return false
	}
	if f.Bathrooms > 0 && p.Bathrooms < f.Bathrooms {
		return false
	}
	return true
}

// Values serializes the supplied criteria to query parameters. Round-trips
// with ParseFilters, so a search is shareable as a URL.
func (f SearchFilters) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.PropertyType != "" {
		v.Set("propertyType", f.PropertyType)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Bedrooms > 0 {
		v.Set("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	if f.Bathrooms > 0 {
		v.Set("bathrooms", strconv.Itoa(f.Bathrooms))
	}
	return v
}

// ParseFilters extracts recognized parameters from a query string. Numeric
// parameters that fail to parse are treated as absent rather than rejected.
func ParseFilters(q url.Values) SearchFilters {
	f := SearchFilters{
		Type:         q.Get("type"),
		PropertyType: q.Get("propertyType"),
		City:         q.Get("city"),
	}
	if s := q.Get("minPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			f.MinPrice = v
		}
	}
	if s := q.Get("maxPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			f.MaxPrice = v
		}
	}
	if s := q.Get("bedrooms"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			f.Bedrooms = v
		}
	}
	if s := q.Get("bathrooms"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			f.Bathrooms = v
		}
	}
	return f
}
