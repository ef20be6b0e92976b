package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"igaudit/pkg/analyzer"
	"igaudit/pkg/models"
)

var analyzeOutput string

// analysisInput is the normalized document shape the engine expects from a
// scraping collaborator or manual entry
type analysisInput struct {
	Profile models.ProfileRecord `json:"profile"`
	Posts   []models.PostRecord  `json:"posts"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.json>",
	Short: "Analyze a profile document and emit the report as JSON",
	Long: `Analyze reads a JSON document holding one profile record and its posts,
runs the full analysis pipeline, and writes the report as JSON to stdout or
to the file given with --output.

The document shape:

  {
    "profile": {"handle": "...", "follower_count": 0, ...},
    "posts":   [{"caption": "...", "hashtags": ["..."], ...}]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the report to this file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input document: %w", err)
	}

	var input analysisInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input document: %w", err)
	}

	// Ingestion glue normalizes raw tags; the engine expects them clean.
	for i := range input.Posts {
		input.Posts[i].Hashtags = models.NormalizeHashtags(input.Posts[i].Hashtags)
	}

	engine, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	report, err := engine.Run(input.Profile, input.Posts)
	if err != nil {
		return err
	}

	return writeJSON(report, analyzeOutput)
}

// writeJSON marshals v with indentation and writes it to path, or stdout
// when path is empty
func writeJSON(v interface{}, path string) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
