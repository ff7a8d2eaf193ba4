package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Clara4555/ROOFTY/pkg/models"
)

func scanTestimonial(row rowScanner) (*models.Testimonial, error) {
	var (
		t       models.Testimonial
		avatar  sql.NullString
		created int64
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Comment, &avatar, &t.IsActive, &created); err != nil {
		return nil, err
	}
	t.Avatar = avatar.String
	t.CreatedAt = time.UnixMilli(created).UTC()
	return &t, nil
}

func (r *SQLiteRepo) GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, location, rating, comment, avatar, is_active, created FROM testimonials WHERE id = ?`, id)
	t, err := scanTestimonial(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	return t, nil
}

func (r *SQLiteRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return r.queryTestimonials(ctx, `SELECT id, name, location, rating, comment, avatar, is_active, created FROM testimonials ORDER BY id`)
}

func (r *SQLiteRepo) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return r.queryTestimonials(ctx, `SELECT id, name, location, rating, comment, avatar, is_active, created FROM testimonials WHERE is_active = 1 ORDER BY id`)
}

func (r *SQLiteRepo) queryTestimonials(ctx context.Context, query string, args ...any) ([]models.Testimonial, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CreateTestimonial(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	if t == nil {
		return nil, fmt.Errorf("testimonial is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO testimonials (name, location, rating, comment, avatar, is_active, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Location, t.Rating, t.Comment, nullable(t.Avatar), t.IsActive, now())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetTestimonial(ctx, id)
}
