package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taglines",
	Short: "Taglines - marketing copy from a product description",
	Long: `Taglines turns a short product description into five marketing taglines
and an SEO meta description.

Generation runs in-process, either with the deterministic template engine
or with an OpenAI chat model, using the same configuration as the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
