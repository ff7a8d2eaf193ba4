// Package schema validates write payloads against JSON Schemas before they
// reach a store. The schemas govern allowed fields and primitive shapes only;
// they enforce no cross-field business rules, and unknown fields pass through
// (handlers decode them away).
package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

const propertySchemaJSON = `{
	"type": "object",
	"required": ["title", "description", "price", "type", "propertyType", "bedrooms", "bathrooms", "sqft", "address", "city", "state", "zipCode"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"price": {"type": "string", "minLength": 1},
		"type": {"type": "string"},
		"propertyType": {"type": "string"},
		"bedrooms": {"type": "integer", "minimum": 0},
		"bathrooms": {"type": "integer", "minimum": 0},
		"sqft": {"type": "integer", "minimum": 1},
		"address": {"type": "string", "minLength": 1},
		"city": {"type": "string", "minLength": 1},
		"state": {"type": "string", "minLength": 1},
		"zipCode": {"type": "string", "minLength": 1},
		"latitude": {"type": "string"},
		"longitude": {"type": "string"},
		"images": {"type": "array", "items": {"type": "string"}},
		"amenities": {"type": "array", "items": {"type": "string"}},
		"features": {"type": "array", "items": {"type": "string"}},
		"yearBuilt": {"type": "integer"},
		"parking": {"type": "integer", "minimum": 0},
		"isActive": {"type": "boolean"},
		"isFeatured": {"type": "boolean"},
		"rating": {"type": "string"},
		"agentName": {"type": "string"},
		"agentPhone": {"type": "string"},
		"agentEmail": {"type": "string"}
	}
}`

const testimonialSchemaJSON = `{
	"type": "object",
	"required": ["name", "location", "comment"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"comment": {"type": "string", "minLength": 1},
		"avatar": {"type": "string"},
		"isActive": {"type": "boolean"}
	}
}`

// Registry holds the compiled write schemas.
type Registry struct {
	property    *jsonschema.Schema
	testimonial *jsonschema.Schema
}

// New compiles the embedded schemas once, at construction.
func New() (*Registry, error) {
	r := &Registry{}
	var err error
	if r.property, err = compile(propertySchemaJSON); err != nil {
		return nil, fmt.Errorf("compile property schema: %w", err)
	}
	if r.testimonial, err = compile(testimonialSchemaJSON); err != nil {
		return nil, fmt.Errorf("compile testimonial schema: %w", err)
	}
	return r, nil
}

func compile(src string) (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// ValidateProperty checks a property write payload. A non-nil error means the
// payload must be rejected without creating anything.
func (r *Registry) ValidateProperty(ctx context.Context, data []byte) error {
	return validate(ctx, r.property, data)
}

// ValidateTestimonial checks a testimonial write payload.
func (r *Registry) ValidateTestimonial(ctx context.Context, data []byte) error {
	return validate(ctx, r.testimonial, data)
}

func validate(ctx context.Context, s *jsonschema.Schema, data []byte) error {
	verrs, err := s.ValidateBytes(ctx, data)
	if err != nil {
		return err
	}
	if len(verrs) > 0 {
		return fmt.Errorf("schema validation: %s", verrs[0].Error())
	}
	return nil
}
