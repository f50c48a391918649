package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/student-directory-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// InsertionOrder orders rows by primary key so callers get a deterministic
// input order to rank from.
func InsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
