package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/dashboard"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/pipeline"
	"github.com/saketmishra7224/calmify/internal/server"
)

var (
	corpusFile string
	policyFile string
	listenAddr string
	auditFile  string
	noConsole  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the crisis detection HTTP service",
	Long:  "Start the HTTP service that analyzes patient messages, triages sessions, and drives escalation.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&corpusFile, "corpus", "", "Path to corpus YAML file (default: built-in corpus)")
	serveCmd.Flags().StringVar(&policyFile, "policy", "configs/default_policy.yaml", "Path to escalation policy YAML file")
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&auditFile, "audit-log", "", "Path to audit log file (default: stderr)")
	serveCmd.Flags().BoolVar(&noConsole, "no-console", false, "Disable the real-time responder console")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("component", "calmify-crisis").Logger()

	// Load corpus. A broken corpus is fatal: serving traffic with an empty
	// phrase table would silently answer "no crisis" for every message.
	corp, err := loadCorpus()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	logger.Info().Int("phrases", len(corp.Phrases())).Msg("corpus loaded")

	// Load escalation policy
	pol, err := escalation.LoadFromFile(policyFile)
	if err != nil {
		return fmt.Errorf("loading policy: %w", err)
	}
	logger.Info().
		Str("policy", pol.PolicyName).
		Str("version", pol.Version).
		Int("rules", len(pol.Rules)).
		Msg("escalation policy loaded")

	// Set up audit logger
	var auditLogger *audit.Logger
	if auditFile != "" {
		auditLogger, err = audit.NewFileLogger(auditFile)
		if err != nil {
			return fmt.Errorf("creating audit logger: %w", err)
		}
		logger.Info().Str("path", auditFile).Msg("audit log enabled")
	} else {
		auditLogger = audit.NewStderrLogger()
	}

	// Create pipeline
	pipe := pipeline.New(corp, pol, auditLogger)

	// Set up the responder console
	var consoleHandler http.Handler
	if !noConsole {
		hub := dashboard.NewHub(pol, pipe.Alerts())
		pipe.AddObserver(hub.OnEvent)
		dashboard.Run(context.Background(), hub)
		consoleHandler = dashboard.Handler(hub)
	}

	srv := server.New(pipe, consoleHandler, logger)

	logger.Info().Str("listen", listenAddr).Msg("starting crisis detection service")

	fmt.Fprintf(os.Stderr, "\n  Calmify Crisis Engine v%s\n", Version)
	fmt.Fprintf(os.Stderr, "  Policy:  %s (%s)\n", pol.PolicyName, pol.Version)
	fmt.Fprintf(os.Stderr, "  Listen:  %s\n", listenAddr)
	if !noConsole {
		consoleAddr := listenAddr
		if strings.HasPrefix(consoleAddr, ":") {
			consoleAddr = "localhost" + consoleAddr
		}
		fmt.Fprintf(os.Stderr, "  Console: http://%s/_calmify/\n", consoleAddr)
	}
	fmt.Fprintln(os.Stderr)

	return http.ListenAndServe(listenAddr, srv)
}

// loadCorpus returns the built-in corpus or the override file when set.
func loadCorpus() (*corpus.Corpus, error) {
	if corpusFile == "" {
		return corpus.Default(), nil
	}
	return corpus.LoadFromFile(corpusFile)
}
