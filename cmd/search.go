package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/engine"
	"github.com/lextransition/lexcite-cli/internal/search"
)

var (
	flagSearchK    int
	flagSearchDir  string
	flagSearchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the PDF corpus for grounded citations",
	Long: `Index the corpus directory and answer a free-text query with ranked,
source-attributed snippets. With LEXCITE_USE_EMBEDDINGS=1 and a configured
provider, ranking uses embedding similarity over the persisted semantic
index; otherwise term-frequency keyword scoring. When embeddings are enabled
but unusable the command reports no result rather than silently switching to
keyword scoring.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", search.DefaultTopK, "Number of citations to show")
	searchCmd.Flags().StringVar(&flagSearchDir, "dir", "", "Corpus directory override")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Emit structured JSON instead of markdown")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagSearchK < 1 {
		return fmt.Errorf("--k must be a positive integer, got %d", flagSearchK)
	}
	query := strings.Join(args, " ")

	eng, cfg, err := newEngine()
	if err != nil {
		return err
	}

	dir := cfg.CorpusDir
	if flagSearchDir != "" {
		dir = flagSearchDir
	}
	if err := eng.IndexDir(cmd.Context(), dir); err != nil {
		if errors.Is(err, engine.ErrPDFSupport) {
			return fmt.Errorf("PDF text extraction is not available in this build")
		}
		return fmt.Errorf("index build failed: %w", err)
	}

	hits, err := eng.Search(cmd.Context(), query, flagSearchK)
	if err != nil {
		return err
	}

	if flagSearchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if hits == nil {
			hits = []search.Hit{}
		}
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		printMiss("", "no grounded citation found — add more source PDFs to the corpus")
		return nil
	}
	fmt.Println(engine.RenderMarkdown(hits, cfg.UseEmbeddings))
	return nil
}
