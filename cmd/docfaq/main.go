package main

import (
	"fmt"
	"os"

	"github.com/docfaq/docfaq/internal/cli"
	"github.com/docfaq/docfaq/internal/cli/client"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "docfaq",
		Short: "docfaq CLI - ask questions against a document",
		Long: `docfaq CLI provides commands to query a docfaq server.

Environment variables:
  DOCFAQ_API_KEY   Admin API key (only needed for kb and status commands)
  DOCFAQ_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-key", "", "API key for authentication (overrides env and config)")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env and config)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.AskCmd())
	rootCmd.AddCommand(client.KbCmd())
	rootCmd.AddCommand(client.StatusCmd())
	rootCmd.AddCommand(client.AuthCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
