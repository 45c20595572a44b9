package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/pipeline"
)

var analyzePolicyFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [message text]",
	Short: "Analyze a single message and show the crisis assessment",
	Long:  "Run crisis detection on the given text and display the category scores, risk level, priority, and escalation decision.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePolicyFile, "policy", "configs/default_policy.yaml", "Path to escalation policy YAML file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	pol, err := loadAnalyzePolicy()
	if err != nil {
		return fmt.Errorf("loading policy: %w", err)
	}

	corp, err := loadCorpus()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	pipe := pipeline.New(corp, pol, audit.NopLogger())
	report := pipe.Process(pipeline.Request{Text: text})

	fmt.Fprintf(os.Stderr, "\n=== Crisis Analysis ===\n\n")
	fmt.Fprintf(os.Stderr, "Message: %q\n\n", truncate(text, 120))

	analysisJSON, _ := json.MarshalIndent(report.Analysis, "", "  ")
	fmt.Fprintf(os.Stdout, "%s\n", analysisJSON)

	fmt.Fprintf(os.Stderr, "\n=== Decision ===\n\n")
	fmt.Fprintf(os.Stderr, "  Risk level: %s\n", report.Analysis.RiskLevel)
	fmt.Fprintf(os.Stderr, "  Priority:   %d (%s, wait %s)\n",
		report.Priority.Score, report.Priority.Level, report.Priority.EstimatedWaitTime)
	fmt.Fprintf(os.Stderr, "  Action:     %s\n", report.Decision.Action)
	if report.Decision.RuleName != "" {
		fmt.Fprintf(os.Stderr, "  Rule:       %s\n", report.Decision.RuleName)
	}
	if report.Decision.Alert != nil {
		fmt.Fprintf(os.Stderr, "  Alert:      %s\n", report.Decision.Alert.ID)
	}
	fmt.Fprintln(os.Stderr)

	return nil
}

// loadAnalyzePolicy falls back to the built-in policy when the default file
// is absent, so `analyze` works from any directory.
func loadAnalyzePolicy() (*escalation.Policy, error) {
	if _, err := os.Stat(analyzePolicyFile); os.IsNotExist(err) && analyzePolicyFile == "configs/default_policy.yaml" {
		return escalation.Default(), nil
	}
	return escalation.LoadFromFile(analyzePolicyFile)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
