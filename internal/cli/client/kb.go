package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// KnowledgeEntry represents one entry of the knowledge listing.
type KnowledgeEntry struct {
	Label    string   `json:"label"`
	Body     string   `json:"body"`
	Patterns []string `json:"patterns"`
}

// KnowledgeResponse represents the knowledge listing API response.
type KnowledgeResponse struct {
	Source     string           `json:"source,omitempty"`
	LoadedAt   string           `json:"loaded_at,omitempty"`
	EntryCount int              `json:"entry_count"`
	Entries    []KnowledgeEntry `json:"entries"`
}

// KbCmd creates the kb parent command.
func KbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect and manage the knowledge base",
		Long:  "List the server's knowledge entries and trigger a rebuild.",
	}

	cmd.AddCommand(KbListCmd())
	cmd.AddCommand(KbReloadCmd())

	return cmd
}

// KbListCmd creates the kb list command.
func KbListCmd() *cobra.Command {
	var showPatterns bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge entries",
		Long:  "Lists every entry of the server's current knowledge base.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runKbList(showPatterns, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&showPatterns, "patterns", false, "Show the match patterns of each entry")
	cmd.Flags().Bool("output", false, "Output as JSON")

	return cmd
}

// KbReloadCmd creates the kb reload command.
func KbReloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Rebuild the knowledge base",
		Long:  "Triggers a synchronous re-read of the source document on the server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKbReload()
		},
	}

	return cmd
}

func runKbList(showPatterns, outputJSON bool) error {
	api, err := NewAPIClient()
	if err != nil {
		return err
	}

	resp, err := api.Get("/knowledge")
	if err != nil {
		return fmt.Errorf("failed to list knowledge: %w", err)
	}

	var kbResp KnowledgeResponse
	if err := json.Unmarshal(resp.Data, &kbResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(kbResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if kbResp.EntryCount == 0 {
		fmt.Println("Knowledge base is empty.")
		return nil
	}

	fmt.Printf("%d entries", kbResp.EntryCount)
	if kbResp.Source != "" {
		fmt.Printf(" from %s", kbResp.Source)
	}
	if kbResp.LoadedAt != "" {
		fmt.Printf(" (loaded %s)", kbResp.LoadedAt)
	}
	fmt.Print("\n\n")

	for i, entry := range kbResp.Entries {
		fmt.Printf("%d. %s\n", i+1, entry.Label)
		body := entry.Body
		if len(body) > 100 {
			body = body[:97] + "..."
		}
		fmt.Printf("   %s\n", body)
		if showPatterns {
			fmt.Printf("   Patterns: %s\n", strings.Join(entry.Patterns, ", "))
		}
		if i < len(kbResp.Entries)-1 {
			fmt.Println(strings.Repeat("-", 40))
		}
	}

	return nil
}

func runKbReload() error {
	api, err := NewAPIClient()
	if err != nil {
		return err
	}

	resp, err := api.Post("/reload", nil)
	if err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}

	var reloadResp struct {
		EntryCount int `json:"entry_count"`
	}
	if err := json.Unmarshal(resp.Data, &reloadResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Printf("Knowledge base rebuilt: %d entries\n", reloadResp.EntryCount)
	return nil
}
