package main

import (
	"fmt"
	"os"

	"github.com/docfaq/docfaq/internal/cli"
	"github.com/docfaq/docfaq/internal/cli/admin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docfaqd",
		Short: "docfaq daemon",
		Long:  "docfaq daemon for serving question answering over a source document",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
