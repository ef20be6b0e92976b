package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"igaudit/pkg/analyzer"
	"igaudit/pkg/followers"
)

var followersOutput string

// followersInput is the sampled follower document a collection collaborator
// supplies
type followersInput struct {
	Handle string                    `json:"handle"`
	Sample []followers.FollowerStats `json:"sample"`
}

var followersCmd = &cobra.Command{
	Use:   "followers <sample.json>",
	Short: "Audit a sampled follower list for bot-like accounts",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollowers,
}

func init() {
	rootCmd.AddCommand(followersCmd)
	followersCmd.Flags().StringVarP(&followersOutput, "output", "o", "", "write the summary to this file instead of stdout")
}

func runFollowers(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read sample document: %w", err)
	}

	var input followersInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse sample document: %w", err)
	}

	engine, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	summary := engine.AuditFollowers(input.Handle, input.Sample)
	return writeJSON(summary, followersOutput)
}
