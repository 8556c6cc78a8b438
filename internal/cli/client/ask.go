package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AskRequest represents the ask API request.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse represents the ask API response.
type AskResponse struct {
	Matched           bool   `json:"matched"`
	Answer            string `json:"answer,omitempty"`
	Label             string `json:"label,omitempty"`
	ConfidencePercent int    `json:"confidence_percent"`
	FallbackMessage   string `json:"fallback_message,omitempty"`
}

// AskCmd creates the ask command.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question",
		Long:  "Asks a free-text question against the server's knowledge base.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAsk(strings.Join(args, " "), outputJSON)
		},
	}

	cmd.Flags().Bool("output", false, "Output as JSON")

	return cmd
}

func runAsk(query string, outputJSON bool) error {
	api, err := NewAPIClient()
	if err != nil {
		return err
	}

	resp, err := api.Post("/ask", AskRequest{Query: query})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	var askResp AskResponse
	if err := json.Unmarshal(resp.Data, &askResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(askResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if !askResp.Matched {
		fmt.Println(askResp.FallbackMessage)
		return nil
	}

	fmt.Println(askResp.Answer)
	fmt.Printf("\n(%s, confidence %d%%)\n", askResp.Label, askResp.ConfidencePercent)
	return nil
}
