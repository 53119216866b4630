package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/corpus"
	"github.com/lextransition/lexcite-cli/internal/engine"
)

var addCmd = &cobra.Command{
	Use:   "add <file.pdf>",
	Short: "Add a single PDF to the corpus and re-index",
	Long: `Copy a PDF into the corpus directory (unless it already lives there) and
rebuild the citation index for that directory. The rebuild is a full pass
over the directory, so previously added documents stay indexed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	src := args[0]
	if !strings.EqualFold(filepath.Ext(src), ".pdf") {
		return fmt.Errorf("only .pdf files can be added, got %s", filepath.Base(src))
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("cannot read %s: %w", src, err)
	}

	eng, cfg, err := newEngine()
	if err != nil {
		return err
	}

	dst, err := corpus.ImportFile(src, cfg.CorpusDir)
	if err != nil {
		return err
	}
	if dst != src {
		printInfo("", fmt.Sprintf("copied into corpus: %s", dst))
	}

	if err := eng.AddDocument(cmd.Context(), dst); err != nil {
		if errors.Is(err, engine.ErrPDFSupport) {
			return fmt.Errorf("PDF text extraction is not available in this build")
		}
		return fmt.Errorf("re-index failed: %w", err)
	}
	printOK("", fmt.Sprintf("indexed %s", filepath.Base(dst)))
	return nil
}
