// Package main provides the entry point for the resume matcher CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Resume parsing and candidate-job matching engine",
	Long: "Matcher extracts structured profiles from resume documents, compares its two\n" +
		"parser implementations, and scores and ranks candidates against job requirements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
