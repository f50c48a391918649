package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukikurage/student-directory-api/internal/database"
	"github.com/yukikurage/student-directory-api/internal/fixtures"
	"gorm.io/gorm"
)

var seedCount int

// seedCmd fills the database with demo students
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo students and a demo project",
	Long: `Create demo students with staggered sign-in times and a project shared
by the first half of them. Every demo student's password is "password123".

Examples:
  studentboard seed
  studentboard seed --count 30`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedCount, "count", 10, "Number of students to create")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", seedCount)
	}

	_, _, db, err := bootstrap()
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	var result *fixtures.SeedResult
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = fixtures.Seed(tx, seedCount)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info().
		Int("users", len(result.Users)).
		Int("projects", len(result.Projects)).
		Msg("Database seeded")
	return nil
}
