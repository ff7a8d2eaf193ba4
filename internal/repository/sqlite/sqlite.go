// Package sqlite implements the repository contracts on SQLite, as the
// durable alternative to the in-memory store. Callers depend only on
// pkg/repository and cannot tell the two apart.
package sqlite

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Clara4555/ROOFTY/internal/db"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.PropertyRepo = (*SQLiteRepo)(nil)
var _ repository.TestimonialRepo = (*SQLiteRepo)(nil)
var _ repository.UserRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// encodeList stores a string slice as a JSON text column, mirroring the
// array columns of the reference schema.
func encodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeList(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
