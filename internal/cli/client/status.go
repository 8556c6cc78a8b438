package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// StatusResponse represents the status API response.
type StatusResponse struct {
	Source        string `json:"source,omitempty"`
	EntryCount    int    `json:"entry_count"`
	LoadedAt      string `json:"loaded_at,omitempty"`
	LastAttemptAt string `json:"last_attempt_at,omitempty"`
	LastError     string `json:"last_error,omitempty"`
}

// StatusCmd creates the status command.
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show server knowledge status",
		Long:  "Displays the server's knowledge base load state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runStatus(outputJSON)
		},
	}

	cmd.Flags().Bool("output", false, "Output as JSON")

	return cmd
}

func runStatus(outputJSON bool) error {
	api, err := NewAPIClient()
	if err != nil {
		return err
	}

	resp, err := api.Get("/status")
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	var statusResp StatusResponse
	if err := json.Unmarshal(resp.Data, &statusResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(statusResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Entries:       %d\n", statusResp.EntryCount)
	if statusResp.Source != "" {
		fmt.Printf("Source:        %s\n", statusResp.Source)
	}
	if statusResp.LoadedAt != "" {
		fmt.Printf("Loaded at:     %s\n", statusResp.LoadedAt)
	}
	if statusResp.LastAttemptAt != "" {
		fmt.Printf("Last attempt:  %s\n", statusResp.LastAttemptAt)
	}
	if statusResp.LastError != "" {
		fmt.Printf("Last error:    %s\n", statusResp.LastError)
	}
	return nil
}
