// Package seed holds the fixture data the memory store starts with: 18
// properties and 3 testimonials. It is the only initial data in the system.
package seed

import (
	"context"
	"fmt"

	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

// Apply inserts every fixture through the repository contracts, so ids and
// timestamps are assigned the same way user-created records get them.
func Apply(ctx context.Context, props repository.PropertyRepo, tests repository.TestimonialRepo) error {
	for i := range fixtureProperties {
		if _, err := props.CreateProperty(ctx, &fixtureProperties[i]); err != nil {
			return fmt.Errorf("seed property %q: %w", fixtureProperties[i].Title, err)
		}
	}
	for i := range fixtureTestimonials {
		if _, err := tests.CreateTestimonial(ctx, &fixtureTestimonials[i]); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", fixtureTestimonials[i].Name, err)
		}
	}
	return nil
}

// Properties returns a copy of the property fixtures.
func Properties() []models.Property {
	out := make([]models.Property, len(fixtureProperties))
	copy(out, fixtureProperties)
	return out
}

// Testimonials returns a copy of the testimonial fixtures.
func Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(fixtureTestimonials))
	copy(out, fixtureTestimonials)
	return out
}

var fixtureProperties = []models.Property{
	{
		Title:        "Modern Villa with Pool",
		Description:  "Stunning modern villa featuring contemporary architecture, spacious interiors, and a beautiful swimming pool. Perfect for luxury living with high-end finishes throughout.",
		Price:        "849000",
		Type:         "sale",
		PropertyType: "villa",
		Bedrooms:     4,
		Bathrooms:    3,
		Sqft:         2850,
		Address:      "123 Beverly Hills Drive",
		City:         "Beverly Hills",
		State:        "CA",
		ZipCode:      "90210",
		Latitude:     "34.0736",
		Longitude:    "-118.4004",
		Images: []string{
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Swimming Pool", "Garage", "Garden", "Security System", "Air Conditioning"},
		Features:   []string{"Modern Kitchen", "Walk-in Closet", "Fireplace", "Hardwood Floors"},
		YearBuilt:  2020,
		Parking:    2,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.9",
		AgentName:  "Sarah Johnson",
		AgentPhone: "+1 (555) 123-4567",
		AgentEmail: "sarah@roofty.com",
	},
	{
		Title:        "Downtown Luxury Apartment",
		Description:  "Sophisticated apartment in the heart of Manhattan with breathtaking city views. Features modern amenities and premium finishes in a prime location.",
		Price:        "4200",
		Type:         "rent",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    2,
		Sqft:         1200,
		Address:      "456 Manhattan Avenue",
		City:         "Manhattan",
		State:        "NY",
		ZipCode:      "10001",
		Latitude:     "40.7505",
		Longitude:    "-73.9934",
		Images: []string{
			"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Gym", "Concierge", "Rooftop Terrace", "Pet Friendly"},
		Features:   []string{"City Views", "Modern Kitchen", "In-unit Laundry"},
		YearBuilt:  2018,
		Parking:    1,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.8",
		AgentName:  "Michael Chen",
		AgentPhone: "+1 (555) 234-5678",
		AgentEmail: "michael@roofty.com",
	},
	{
		Title:        "Family Home with Garden",
		Description:  "Charming family home with a beautiful garden, perfect for raising children. Features spacious rooms and a quiet neighborhood setting.",
		Price:        "625000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     3,
		Bathrooms:    2,
		Sqft:         2100,
		Address:      "789 Austin Street",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "73301",
		Latitude:     "30.2672",
		Longitude:    "-97.7431",
		Images: []string{
			"https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1570129477492-45c003edd2be?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Garden", "Garage", "Basement", "Patio"},
		Features:   []string{"Updated Kitchen", "Hardwood Floors", "Bay Windows"},
		YearBuilt:  2015,
		Parking:    2,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.7",
		AgentName:  "Emily Rodriguez",
		AgentPhone: "+1 (555) 345-6789",
		AgentEmail: "emily@roofty.com",
	},
	{
		Title:        "Penthouse with City Views",
		Description:  "Luxurious penthouse offering panoramic city views and premium amenities. The epitome of sophisticated urban living.",
		Price:        "6800",
		Type:         "rent",
		PropertyType: "condo",
		Bedrooms:     3,
		Bathrooms:    3,
		Sqft:         2400,
		Address:      "321 Miami Beach Drive",
		City:         "Miami",
		State:        "FL",
		ZipCode:      "33139",
		Latitude:     "25.7617",
		Longitude:    "-80.1918",
		Images: []string{
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Ocean View", "Pool", "Gym", "Valet Parking", "24/7 Security"},
		Features:   []string{"Floor-to-ceiling Windows", "Private Balcony", "Premium Appliances"},
		YearBuilt:  2019,
		Parking:    2,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "5.0",
		AgentName:  "David Wilson",
		AgentPhone: "+1 (555) 456-7890",
		AgentEmail: "david@roofty.com",
	},
	{
		Title:        "Cozy Cottage Retreat",
		Description:  "Charming cottage-style home with rustic appeal and modern comforts. Perfect for those seeking a peaceful retreat.",
		Price:        "485000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     2,
		Bathrooms:    2,
		Sqft:         1800,
		Address:      "654 Portland Avenue",
		City:         "Portland",
		State:        "OR",
		ZipCode:      "97201",
		Latitude:     "45.5152",
		Longitude:    "-122.6784",
		Images: []string{
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Garden", "Fireplace", "Patio", "Storage Shed"},
		Features:   []string{"Cottage Style", "Updated Kitchen", "Cozy Interior"},
		YearBuilt:  2010,
		Parking:    1,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.6",
		AgentName:  "Lisa Anderson",
		AgentPhone: "+1 (555) 567-8901",
		AgentEmail: "lisa@roofty.com",
	},
	{
		Title:        "Minimalist Modern Home",
		Description:  "Sleek modern home with clean lines and minimalist design. Features the latest in smart home technology and energy efficiency.",
		Price:        "920000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     4,
		Bathrooms:    3,
		Sqft:         3200,
		Address:      "987 Seattle Drive",
		City:         "Seattle",
		State:        "WA",
		ZipCode:      "98101",
		Latitude:     "47.6062",
		Longitude:    "-122.3321",
		Images: []string{
			"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Smart Home", "Solar Panels", "Electric Car Charging", "Modern Kitchen"},
		Features:   []string{"Minimalist Design", "Large Windows", "Open Floor Plan"},
		YearBuilt:  2021,
		Parking:    2,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.9",
		AgentName:  "Robert Kim",
		AgentPhone: "+1 (555) 678-9012",
		AgentEmail: "robert@roofty.com",
	},
	{
		Title:        "Sunny Studio Near the Park",
		Description:  "Bright studio apartment steps from the park, with tall windows and an efficient layout. Ideal first rental in the city.",
		Price:        "1850",
		Type:         "rent",
		PropertyType: "apartment",
		Bedrooms:     1,
		Bathrooms:    1,
		Sqft:         540,
		Address:      "12 Lakeview Terrace",
		City:         "Chicago",
		State:        "IL",
		ZipCode:      "60614",
		Latitude:     "41.9227",
		Longitude:    "-87.6534",
		Images: []string{
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Laundry Room", "Bike Storage", "Pet Friendly"},
		Features:   []string{"Park Views", "High Ceilings"},
		YearBuilt:  2005,
		Parking:    0,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.3",
		AgentName:  "Michael Chen",
		AgentPhone: "+1 (555) 234-5678",
		AgentEmail: "michael@roofty.com",
	},
	{
		Title:        "Historic Brownstone Townhouse",
		Description:  "Beautifully restored brownstone on a tree-lined street, blending original details with a fully renovated interior.",
		Price:        "1450000",
		Type:         "sale",
		PropertyType: "townhouse",
		Bedrooms:     4,
		Bathrooms:    3,
		Sqft:         3100,
		Address:      "88 Garden Row",
		City:         "Brooklyn",
		State:        "NY",
		ZipCode:      "11201",
		Latitude:     "40.6958",
		Longitude:    "-73.9936",
		Images: []string{
			"https://images.unsplash.com/photo-1605146769289-440113cc3d00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			"https://images.unsplash.com/photo-1576941089067-2de3c901e126?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Private Garden", "Wine Cellar", "Original Moldings"},
		Features:   []string{"Exposed Brick", "Chef's Kitchen", "Roof Deck"},
		YearBuilt:  1905,
		Parking:    0,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.8",
		AgentName:  "Sarah Johnson",
		AgentPhone: "+1 (555) 123-4567",
		AgentEmail: "sarah@roofty.com",
	},
	{
		Title:        "Industrial Loft Downtown",
		Description:  "Converted warehouse loft with soaring ceilings, polished concrete floors, and oversized factory windows.",
		Price:        "3400",
		Type:         "rent",
		PropertyType: "loft",
		Bedrooms:     1,
		Bathrooms:    1,
		Sqft:         1450,
		Address:      "500 Mill District Way",
		City:         "Denver",
		State:        "CO",
		ZipCode:      "80202",
		Latitude:     "39.7392",
		Longitude:    "-104.9903",
		Images: []string{
			"https://images.unsplash.com/photo-1536376072261-38c75010e6c9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Freight Elevator", "Rooftop Lounge", "Gym"},
		Features:   []string{"Exposed Ductwork", "Open Floor Plan", "Factory Windows"},
		YearBuilt:  1932,
		Parking:    1,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.4",
		AgentName:  "David Wilson",
		AgentPhone: "+1 (555) 456-7890",
		AgentEmail: "david@roofty.com",
	},
	{
		Title:        "Lakefront Duplex",
		Description:  "Spacious duplex with private dock access and unobstructed lake views from both levels.",
		Price:        "735000",
		Type:         "sale",
		PropertyType: "duplex",
		Bedrooms:     5,
		Bathrooms:    4,
		Sqft:         3600,
		Address:      "27 Shoreline Court",
		City:         "Madison",
		State:        "WI",
		ZipCode:      "53703",
		Latitude:     "43.0731",
		Longitude:    "-89.4012",
		Images: []string{
			"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Private Dock", "Two Kitchens", "Deck"},
		Features:   []string{"Lake Views", "Separate Entrances", "Finished Basement"},
		YearBuilt:  1998,
		Parking:    3,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.5",
		AgentName:  "Emily Rodriguez",
		AgentPhone: "+1 (555) 345-6789",
		AgentEmail: "emily@roofty.com",
	},
	{
		Title:        "Desert Modern Retreat",
		Description:  "Architect-designed home framing mountain views, with a courtyard pool and drought-tolerant landscaping.",
		Price:        "1120000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     3,
		Bathrooms:    3,
		Sqft:         2700,
		Address:      "4410 Cactus Bloom Road",
		City:         "Scottsdale",
		State:        "AZ",
		ZipCode:      "85251",
		Latitude:     "33.4942",
		Longitude:    "-111.9261",
		Images: []string{
			"https://images.unsplash.com/photo-1600585154526-990dced4db0d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Courtyard Pool", "Outdoor Kitchen", "Casita"},
		Features:   []string{"Mountain Views", "Floor-to-ceiling Glass", "Radiant Cooling"},
		YearBuilt:  2017,
		Parking:    2,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.7",
		AgentName:  "Robert Kim",
		AgentPhone: "+1 (555) 678-9012",
		AgentEmail: "robert@roofty.com",
	},
	{
		Title:        "Garden-Level Condo",
		Description:  "Quiet garden-level condo with a private patio, updated bathroom, and deeded storage in a well-kept association.",
		Price:        "315000",
		Type:         "sale",
		PropertyType: "condo",
		Bedrooms:     2,
		Bathrooms:    1,
		Sqft:         950,
		Address:      "73 Elmwood Street",
		City:         "Boston",
		State:        "MA",
		ZipCode:      "02118",
		Latitude:     "42.3401",
		Longitude:    "-71.0723",
		Images:       []string{},
		Amenities:    []string{"Private Patio", "Deeded Storage", "Shared Laundry"},
		Features:     []string{"Updated Bathroom", "Quiet Street"},
		YearBuilt:    1968,
		Parking:      1,
		IsActive:     true,
		IsFeatured:   false,
		Rating:       "4.1",
		AgentName:    "Lisa Anderson",
		AgentPhone:   "+1 (555) 567-8901",
		AgentEmail:   "lisa@roofty.com",
	},
	{
		Title:        "Suburban Colonial",
		Description:  "Classic four-bedroom colonial on a half-acre lot in a top school district, with a newly fenced backyard.",
		Price:        "540000",
		Type:         "sale",
		PropertyType: "house",
		Bedrooms:     4,
		Bathrooms:    3,
		Sqft:         2600,
		Address:      "19 Maple Hollow Lane",
		City:         "Naperville",
		State:        "IL",
		ZipCode:      "60540",
		Latitude:     "41.7508",
		Longitude:    "-88.1535",
		Images: []string{
			"https://images.unsplash.com/photo-1568605114967-8130f3a36994?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Fenced Yard", "Two-car Garage", "Mudroom"},
		Features:   []string{"Formal Dining Room", "Finished Basement", "New Roof"},
		YearBuilt:  1994,
		Parking:    2,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.4",
		AgentName:  "Emily Rodriguez",
		AgentPhone: "+1 (555) 345-6789",
		AgentEmail: "emily@roofty.com",
	},
	{
		Title:        "Beachside Bungalow Rental",
		Description:  "Single-story bungalow two blocks from the sand, with a breezy screened porch and an outdoor shower.",
		Price:        "2950",
		Type:         "rent",
		PropertyType: "house",
		Bedrooms:     2,
		Bathrooms:    1,
		Sqft:         1100,
		Address:      "8 Driftwood Lane",
		City:         "San Diego",
		State:        "CA",
		ZipCode:      "92109",
		Latitude:     "32.7941",
		Longitude:    "-117.2543",
		Images: []string{
			"https://images.unsplash.com/photo-1510798831971-661eb04b3739?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Screened Porch", "Outdoor Shower", "Surf Rack"},
		Features:   []string{"Walk to Beach", "Bamboo Floors"},
		YearBuilt:  1962,
		Parking:    1,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.2",
		AgentName:  "David Wilson",
		AgentPhone: "+1 (555) 456-7890",
		AgentEmail: "david@roofty.com",
	},
	{
		Title:        "High-Rise Corner Unit",
		Description:  "Corner two-bedroom on the 31st floor with wraparound windows, in a full-service building with resort amenities.",
		Price:        "5200",
		Type:         "rent",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    2,
		Sqft:         1350,
		Address:      "900 Skyline Boulevard",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "78701",
		Latitude:     "30.2669",
		Longitude:    "-97.7428",
		Images: []string{
			"https://images.unsplash.com/photo-1515263487990-61b07816b324?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Pool Deck", "Concierge", "Dog Run", "Co-working Lounge"},
		Features:   []string{"Corner Windows", "Smart Thermostat", "Walk-in Closet"},
		YearBuilt:  2022,
		Parking:    1,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.6",
		AgentName:  "Michael Chen",
		AgentPhone: "+1 (555) 234-5678",
		AgentEmail: "michael@roofty.com",
	},
	{
		Title:        "Mountain View Villa",
		Description:  "Hillside villa with terraced gardens, a heated infinity pool, and sweeping valley views from every bedroom.",
		Price:        "1680000",
		Type:         "sale",
		PropertyType: "villa",
		Bedrooms:     5,
		Bathrooms:    5,
		Sqft:         4400,
		Address:      "2 Summit Ridge",
		City:         "Boulder",
		State:        "CO",
		ZipCode:      "80302",
		Latitude:     "40.0150",
		Longitude:    "-105.2705",
		Images: []string{
			"https://images.unsplash.com/photo-1613977257363-707ba9348227?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Infinity Pool", "Home Theater", "Wine Room", "Three-car Garage"},
		Features:   []string{"Valley Views", "Terraced Gardens", "Primary Suite Balcony"},
		YearBuilt:  2016,
		Parking:    3,
		IsActive:   true,
		IsFeatured: true,
		Rating:     "4.9",
		AgentName:  "Sarah Johnson",
		AgentPhone: "+1 (555) 123-4567",
		AgentEmail: "sarah@roofty.com",
	},
	{
		Title:        "Renovated Mill Loft",
		Description:  "Top-floor loft in a converted textile mill, with original beams, a private mezzanine, and deeded parking.",
		Price:        "389000",
		Type:         "sale",
		PropertyType: "loft",
		Bedrooms:     1,
		Bathrooms:    2,
		Sqft:         1600,
		Address:      "41 Canal Works, Unit 7F",
		City:         "Providence",
		State:        "RI",
		ZipCode:      "02903",
		Latitude:     "41.8240",
		Longitude:    "-71.4128",
		Images: []string{
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Deeded Parking", "Elevator", "Storage Cage"},
		Features:   []string{"Original Beams", "Mezzanine", "14-foot Ceilings"},
		YearBuilt:  1921,
		Parking:    1,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.3",
		AgentName:  "Lisa Anderson",
		AgentPhone: "+1 (555) 567-8901",
		AgentEmail: "lisa@roofty.com",
	},
	{
		Title:        "Townhouse Near Tech Corridor",
		Description:  "Three-level townhouse minutes from the tech corridor, with a rooftop terrace and an attached two-car garage.",
		Price:        "3800",
		Type:         "rent",
		PropertyType: "townhouse",
		Bedrooms:     3,
		Bathrooms:    3,
		Sqft:         1950,
		Address:      "66 Innovation Way",
		City:         "Raleigh",
		State:        "NC",
		ZipCode:      "27601",
		Latitude:     "35.7796",
		Longitude:    "-78.6382",
		Images: []string{
			"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		},
		Amenities:  []string{"Rooftop Terrace", "Attached Garage", "EV Charger"},
		Features:   []string{"Open Kitchen", "Dual Primary Suites", "Energy Star Appliances"},
		YearBuilt:  2020,
		Parking:    2,
		IsActive:   true,
		IsFeatured: false,
		Rating:     "4.5",
		AgentName:  "Robert Kim",
		AgentPhone: "+1 (555) 678-9012",
		AgentEmail: "robert@roofty.com",
	},
}

var fixtureTestimonials = []models.Testimonial{
	{
		Name:     "Sarah Johnson",
		Location: "Beverly Hills, CA",
		Rating:   5,
		Comment:  "Roofty made finding our dream home incredibly easy. The platform is intuitive, and their team provided exceptional support throughout the entire process.",
		Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		IsActive: true,
	},
	{
		Name:     "Michael Chen",
		Location: "Austin, TX",
		Rating:   5,
		Comment:  "The financing options and agent connections were game-changers. We secured our mortgage at an excellent rate and closed in record time.",
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		IsActive: true,
	},
	{
		Name:     "Emily Rodriguez",
		Location: "Miami, FL",
		Rating:   5,
		Comment:  "As first-time buyers, we were overwhelmed, but Roofty's team guided us every step of the way. Couldn't be happier with our new home!",
		Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		IsActive: true,
	},
}
