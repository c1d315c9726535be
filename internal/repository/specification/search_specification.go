package specification

import (
	"strings"

	"gorm.io/gorm"
)

// CustomerSearchQuery matches name, phone or email by substring.
// LOWER() keeps it case-insensitive on both postgres and sqlite.
type CustomerSearchQuery struct {
	Query string
}

func (s CustomerSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(s.Query))) + "%"
	return db.Where(
		"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(phone) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'",
		pattern, pattern, pattern,
	)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
