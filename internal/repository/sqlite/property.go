package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Clara4555/ROOFTY/pkg/models"
)

const propertyColumns = `id, title, description, price, type, property_type, bedrooms, bathrooms, sqft,
	address, city, state, zip_code, latitude, longitude, images, amenities, features,
	year_built, parking, is_active, is_featured, rating, agent_name, agent_phone, agent_email,
	created, updated`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*models.Property, error) {
	var (
		p                      models.Property
		lat, lng               sql.NullString
		images, amens, feats   string
		yearBuilt              sql.NullInt64
		agentN, agentP, agentE sql.NullString
		created, updated       int64
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.PropertyType,
		&p.Bedrooms, &p.Bathrooms, &p.Sqft,
		&p.Address, &p.City, &p.State, &p.ZipCode, &lat, &lng,
		&images, &amens, &feats,
		&yearBuilt, &p.Parking, &p.IsActive, &p.IsFeatured, &p.Rating,
		&agentN, &agentP, &agentE,
		&created, &updated,
	)
	if err != nil {
		return nil, err
	}

	p.Latitude = lat.String
	p.Longitude = lng.String
	p.Images = decodeList(images)
	p.Amenities = decodeList(amens)
	p.Features = decodeList(feats)
	if yearBuilt.Valid {
		p.YearBuilt = int(yearBuilt.Int64)
	}
	p.AgentName = agentN.String
	p.AgentPhone = agentP.String
	p.AgentEmail = agentE.String
	p.CreatedAt = time.UnixMilli(created).UTC()
	p.UpdatedAt = time.UnixMilli(updated).UTC()
	return &p, nil
}

func (r *SQLiteRepo) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) ListProperties(ctx context.Context) ([]models.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE is_active = 1 ORDER BY id`)
}

func (r *SQLiteRepo) ListFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE is_active = 1 AND is_featured = 1 ORDER BY id`)
}

// SearchProperties builds a WHERE clause from the supplied criteria only;
// zero values add no clause, preserving the evaluator's absent-filter
// convention.
func (r *SQLiteRepo) SearchProperties(ctx context.Context, f models.SearchFilters) ([]models.Property, error) {
	where := []string{"is_active = 1"}
	args := []any{}

	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.PropertyType != "" {
		where = append(where, "property_type = ?")
		args = append(args, f.PropertyType)
	}
	if f.City != "" {
		where = append(where, "instr(lower(city), lower(?)) > 0")
		args = append(args, f.City)
	}
	if f.MinPrice > 0 {
		where = append(where, "CAST(price AS REAL) >= ?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where = append(where, "CAST(price AS REAL) <= ?")
		args = append(args, f.MaxPrice)
	}
	if f.Bedrooms > 0 {
		where = append(where, "bedrooms >= ?")
		args = append(args, f.Bedrooms)
	}
	if f.Bathrooms > 0 {
		where = append(where, "bathrooms >= ?")
		args = append(args, f.Bathrooms)
	}

	q := `SELECT ` + propertyColumns + ` FROM properties WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`
	return r.queryProperties(ctx, q, args...)
}

func (r *SQLiteRepo) queryProperties(ctx context.Context, query string, args ...any) ([]models.Property, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	if p == nil {
		return nil, fmt.Errorf("property is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO properties
		(title, description, price, type, property_type, bedrooms, bathrooms, sqft,
		 address, city, state, zip_code, latitude, longitude, images, amenities, features,
		 year_built, parking, is_active, is_featured, rating, agent_name, agent_phone, agent_email,
		 created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Price, p.Type, p.PropertyType, p.Bedrooms, p.Bathrooms, p.Sqft,
		p.Address, p.City, p.State, p.ZipCode, nullable(p.Latitude), nullable(p.Longitude),
		encodeList(p.Images), encodeList(p.Amenities), encodeList(p.Features),
		nullableInt(p.YearBuilt), p.Parking, p.IsActive, p.IsFeatured, p.Rating,
		nullable(p.AgentName), nullable(p.AgentPhone), nullable(p.AgentEmail),
		ts, ts,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetProperty(ctx, id)
}

// UpdateProperty reads the current row, applies the patch in memory, and
// writes the merged record back. Returns (nil, nil) for an unknown id.
func (r *SQLiteRepo) UpdateProperty(ctx context.Context, id int64, patch models.PropertyPatch) (*models.Property, error) {
	existing, err := r.GetProperty(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	merged := patch.Apply(*existing)
	_, err = r.conn.Exec(ctx, `UPDATE properties SET
		title = ?, description = ?, price = ?, type = ?, property_type = ?,
		bedrooms = ?, bathrooms = ?, sqft = ?, address = ?, city = ?, state = ?, zip_code = ?,
		latitude = ?, longitude = ?, images = ?, amenities = ?, features = ?,
		year_built = ?, parking = ?, is_active = ?, is_featured = ?, rating = ?,
		agent_name = ?, agent_phone = ?, agent_email = ?, updated = ?
		WHERE id = ?`,
		merged.Title, merged.Description, merged.Price, merged.Type, merged.PropertyType,
		merged.Bedrooms, merged.Bathrooms, merged.Sqft, merged.Address, merged.City, merged.State, merged.ZipCode,
		nullable(merged.Latitude), nullable(merged.Longitude),
		encodeList(merged.Images), encodeList(merged.Amenities), encodeList(merged.Features),
		nullableInt(merged.YearBuilt), merged.Parking, merged.IsActive, merged.IsFeatured, merged.Rating,
		nullable(merged.AgentName), nullable(merged.AgentPhone), nullable(merged.AgentEmail),
		now(), id,
	)
	if err != nil {
		return nil, err
	}
	return r.GetProperty(ctx, id)
}

func (r *SQLiteRepo) DeleteProperty(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
