package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/student-directory-api/internal/database"
)

// migrateCmd applies the schema without starting the server
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, db, err := bootstrap()
		if err != nil {
			return err
		}
		return database.Migrate(db)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
