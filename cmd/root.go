package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lextransition/lexcite-cli/internal/config"
	"github.com/lextransition/lexcite-cli/internal/corpus"
	"github.com/lextransition/lexcite-cli/internal/engine"
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:          "lexcite",
	Short:        "LexCite — IPC→BNS statute mapping and grounded citation search",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `LexCite maps superseded IPC section identifiers to their BNS successors
and answers free-text queries with ranked, source-attributed citations drawn
verbatim from a locally indexed PDF corpus (./law_pdfs by default).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug information")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the process logger: a no-op logger unless --debug is set.
func newLogger() *zap.Logger {
	if !flagDebug {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// newEngine wires the citation engine from the effective configuration.
func newEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load config: %w", err)
	}
	log := newLogger()
	loader := corpus.NewLoader(corpus.NewPDFExtractor(), log)
	return engine.New(cfg, loader, log), cfg, nil
}
