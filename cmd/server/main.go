package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command of the student directory server
var rootCmd = &cobra.Command{
	Use:   "studentboard",
	Short: "Student directory API server",
	Long: `studentboard serves the student directory: profiles, projects and a
students index ranked by most recent sign-in.

Without a subcommand it behaves like 'studentboard serve'.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
