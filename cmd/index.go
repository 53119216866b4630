package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/engine"
)

var flagIndexClear bool

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Build the citation index from a directory of PDFs",
	Long: `Scan a directory (default: the configured corpus directory) for PDF files
and rebuild the page-level citation index from scratch. The directory is
created when missing; an empty directory indexes successfully to an empty
index. With embeddings enabled, the semantic index is rebuilt and persisted
as well.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexClear, "clear", false, "Delete the persisted semantic index instead of building")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	eng, cfg, err := newEngine()
	if err != nil {
		return err
	}

	if flagIndexClear {
		if err := os.RemoveAll(cfg.IndexDir); err != nil {
			return fmt.Errorf("cannot remove persisted index %s: %w", cfg.IndexDir, err)
		}
		printOK("", fmt.Sprintf("persisted semantic index removed: %s", cfg.IndexDir))
		return nil
	}

	dir := cfg.CorpusDir
	if len(args) == 1 {
		dir = args[0]
	}

	if err := eng.IndexDir(cmd.Context(), dir); err != nil {
		if errors.Is(err, engine.ErrPDFSupport) {
			return fmt.Errorf("PDF text extraction is not available in this build")
		}
		return fmt.Errorf("index build failed: %w", err)
	}
	printOK("", fmt.Sprintf("corpus indexed: %s", dir))
	if cfg.UseEmbeddings {
		if eng.Capabilities().Embeddings {
			printOK("", fmt.Sprintf("semantic index written: %s", cfg.IndexDir))
		} else {
			printWarn("", "embeddings enabled but no provider configured — semantic index skipped")
		}
	}
	return nil
}
