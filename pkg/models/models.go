package models

import "time"

// Domain models for the listings catalog. Monetary and geographic values are
// kept as decimal strings end to end so currency amounts never pass through
// binary floating point.

type Property struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Type         string    `json:"type"` // "sale" or "rent"
	PropertyType string    `json:"propertyType"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Sqft         int       `json:"sqft"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Latitude     string    `json:"latitude,omitempty"`
	Longitude    string    `json:"longitude,omitempty"`
	Images       []string  `json:"images"`
	Amenities    []string  `json:"amenities"`
	Features     []string  `json:"features"`
	YearBuilt    int       `json:"yearBuilt,omitempty"`
	Parking      int       `json:"parking"`
	IsActive     bool      `json:"isActive"`
	IsFeatured   bool      `json:"isFeatured"`
	Rating       string    `json:"rating"`
	AgentName    string    `json:"agentName,omitempty"`
	AgentPhone   string    `json:"agentPhone,omitempty"`
	AgentEmail   string    `json:"agentEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PlaceholderImage is served when a property has no photos of its own.
const PlaceholderImage = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?auto=format&fit=crop&w=800&h=600"

// PrimaryImage returns the display image for a listing, falling back to a
// placeholder when the listing has no images.
func (p Property) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

// PropertyPatch is a partial update: nil fields are left untouched. ID and
// CreatedAt are never patchable.
type PropertyPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Price        *string   `json:"price,omitempty"`
	Type         *string   `json:"type,omitempty"`
	PropertyType *string   `json:"propertyType,omitempty"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Bathrooms    *int      `json:"bathrooms,omitempty"`
	Sqft         *int      `json:"sqft,omitempty"`
	Address      *string   `json:"address,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	ZipCode      *string   `json:"zipCode,omitempty"`
	Latitude     *string   `json:"latitude,omitempty"`
	Longitude    *string   `json:"longitude,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	YearBuilt    *int      `json:"yearBuilt,omitempty"`
	Parking      *int      `json:"parking,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty"`
	IsFeatured   *bool     `json:"isFeatured,omitempty"`
	Rating       *string   `json:"rating,omitempty"`
	AgentName    *string   `json:"agentName,omitempty"`
	AgentPhone   *string   `json:"agentPhone,omitempty"`
	AgentEmail   *string   `json:"agentEmail,omitempty"`
}

// Apply shallow-merges the patch over p and returns the result. ID,
// CreatedAt, and UpdatedAt are left for the store to manage.
func (patch PropertyPatch) Apply(p Property) Property {
	set := func(dst, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Title, patch.Title)
	set(&p.Description, patch.Description)
	set(&p.Price, patch.Price)
	set(&p.Type, patch.Type)
	set(&p.PropertyType, patch.PropertyType)
	setInt(&p.Bedrooms, patch.Bedrooms)
	setInt(&p.Bathrooms, patch.Bathrooms)
	setInt(&p.Sqft, patch.Sqft)
	set(&p.Address, patch.Address)
	set(&p.City, patch.City)
	set(&p.State, patch.State)
	set(&p.ZipCode, patch.ZipCode)
	set(&p.Latitude, patch.Latitude)
	set(&p.Longitude, patch.Longitude)
	if patch.Images != nil {
		p.Images = append([]string(nil), *patch.Images...)
	}
	if patch.Amenities != nil {
		p.Amenities = append([]string(nil), *patch.Amenities...)
	}
	if patch.Features != nil {
		p.Features = append([]string(nil), *patch.Features...)
	}
	setInt(&p.YearBuilt, patch.YearBuilt)
	setInt(&p.Parking, patch.Parking)
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	set(&p.Rating, patch.Rating)
	set(&p.AgentName, patch.AgentName)
	set(&p.AgentPhone, patch.AgentPhone)
	set(&p.AgentEmail, patch.AgentEmail)
	return p
}

type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Avatar    string    `json:"avatar,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is a forward-looking scaffold: no exposed endpoint reads or writes it.
// PasswordHash holds a bcrypt hash, never a plaintext password.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// ContactMessage is a contact form submission. Delivery is owned by an
// external collaborator (see internal/mail), not by the store.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
