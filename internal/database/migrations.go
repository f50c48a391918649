package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type indexSpec struct {
	name  string
	table string
	cols  string
}

// indexes lists secondary indexes not expressible as struct tags.
var indexes = []indexSpec{
	// Reverse lookup for a user's projects
	{"idx_project_memberships_user_id", "project_memberships", "user_id"},
	// Index sort by newest account
	{"idx_users_created_at", "users", "created_at"},
}

// AddIndexes adds the query indexes used by the users index and project pages.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			log.Debug().Str("index", idx.name).Msg("Index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.cols)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Str("columns", idx.cols).Msg("Created index")
	}

	return nil
}
