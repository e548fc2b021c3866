// Package main is the entry point for the resume builder backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-backend",
	Short: "Resume builder backend",
	Long:  "Backend for the resume builder: editing API, template rendering, site publication, PDF export and AI writing assistance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
