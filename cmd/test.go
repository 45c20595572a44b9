package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/pipeline"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run built-in test messages against the engine",
	Long:  "Run a suite of crisis and benign test messages to verify detection and escalation behavior.",
	RunE:  runTest,
}

func init() {
	testCmd.Flags().StringVar(&analyzePolicyFile, "policy", "configs/default_policy.yaml", "Path to escalation policy YAML file")
}

type testCase struct {
	name     string
	message  string
	expected string // expected risk level
}

var testCases = []testCase{
	// Benign messages
	{
		name:     "benign_mild_sadness",
		message:  "I feel a bit sad today",
		expected: "minimal",
	},
	{
		name:     "benign_greeting",
		message:  "Hi, can we talk about my week?",
		expected: "minimal",
	},

	// Critical
	{
		name:     "suicide_with_immediacy",
		message:  "I want to kill myself tonight",
		expected: "critical",
	},
	{
		name:     "suicide_with_method",
		message:  "I have the pills counted and I'm ready to go",
		expected: "critical",
	},

	// Negation lowers the contribution
	{
		name:     "negated_self_harm",
		message:  "I don't want to hurt myself",
		expected: "minimal",
	},

	// Multiple mild concerns combine to at least medium
	{
		name:     "multiple_concerns",
		message:  "There's no point anymore, I've been drinking a lot and I feel so alone",
		expected: "medium",
	},
}

func runTest(cmd *cobra.Command, args []string) error {
	pol, err := loadAnalyzePolicy()
	if err != nil {
		return fmt.Errorf("loading policy: %w", err)
	}
	corp, err := loadCorpus()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	pipe := pipeline.New(corp, pol, audit.NopLogger())

	fmt.Fprintf(os.Stderr, "\n=== Calmify Detection Tests ===\n")
	fmt.Fprintf(os.Stderr, "Policy: %s (%s)\n\n", pol.PolicyName, pol.Version)

	passed := 0
	failed := 0

	for _, tc := range testCases {
		report := pipe.Process(pipeline.Request{Text: tc.message})
		actual := string(report.Analysis.RiskLevel)

		status := "PASS"
		if actual != tc.expected {
			status = "FAIL"
			failed++
		} else {
			passed++
		}

		fmt.Fprintf(os.Stderr, "  [%s] %-26s expected=%-9s got=%-9s priority=%d",
			status, tc.name, tc.expected, actual, report.Priority.Score)
		if report.Decision.RuleName != "" {
			fmt.Fprintf(os.Stderr, " rule=%s", report.Decision.RuleName)
		}
		fmt.Fprintln(os.Stderr)
	}

	fmt.Fprintf(os.Stderr, "\n  Results: %d passed, %d failed, %d total\n\n",
		passed, failed, len(testCases))

	if failed > 0 {
		return fmt.Errorf("%d test(s) failed", failed)
	}
	return nil
}
