package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/config"
	"github.com/lextransition/lexcite-cli/internal/corpus"
	"github.com/lextransition/lexcite-cli/internal/embeddings"
	"github.com/lextransition/lexcite-cli/internal/search/index"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that lexcite's dependencies and environment are correctly configured.
Run this command when something seems wrong, or before filing a bug report.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("lexcite doctor")
	fmt.Println()

	// ── Check 1: PDF text extraction ──────────────────────────────────────────
	fmt.Println("[ PDF extraction ]")
	loader := corpus.NewLoader(corpus.NewPDFExtractor(), newLogger())
	if !loader.Available() {
		failD("PDF text extraction is not available — indexing will fail")
	} else {
		printOK("", "pure-Go PDF text extraction compiled in")
	}
	fmt.Println()

	// ── Check 2: lexcite.yaml is valid ────────────────────────────────────────
	fmt.Println("[ lexcite.yaml ]")
	cfgPath, _ := config.ConfigPath()
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printSkip("", fmt.Sprintf("%s not found — defaults apply (run 'lexcite init' to create it)", cfgPath))
	}
	cfg, loadErr := config.Load()
	if loadErr != nil {
		failD("cannot resolve configuration: %v", loadErr)
	} else {
		printOK("", fmt.Sprintf("effective config — corpus: %s, index: %s", cfg.CorpusDir, cfg.IndexDir))
	}
	fmt.Println()

	// ── Check 3: corpus directory ─────────────────────────────────────────────
	fmt.Println("[ Corpus directory ]")
	if loadErr == nil {
		entries, err := os.ReadDir(cfg.CorpusDir)
		switch {
		case os.IsNotExist(err):
			printWarn("", fmt.Sprintf("%s does not exist yet — it is created on first index", cfg.CorpusDir))
		case err != nil:
			failD("cannot read corpus dir %s: %v", cfg.CorpusDir, err)
		default:
			var pdfs int
			for _, e := range entries {
				if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
					pdfs++
				}
			}
			if pdfs == 0 {
				printWarn("", fmt.Sprintf("no PDF files in %s — searches will return no citations", cfg.CorpusDir))
			} else {
				printOK("", fmt.Sprintf("%d PDF file(s) in %s", pdfs, cfg.CorpusDir))
			}
		}
	} else {
		printWarn("", "skipped (configuration not loaded)")
	}
	fmt.Println()

	// ── Check 4: embeddings configuration ─────────────────────────────────────
	fmt.Println("[ Embeddings ]")
	if loadErr == nil && !cfg.UseEmbeddings {
		printSkip("", "embeddings disabled — keyword scoring in use (set LEXCITE_USE_EMBEDDINGS=1 to enable)")
	} else if loadErr == nil {
		embCfg, err := embeddings.LoadConfig()
		if err != nil {
			failD("cannot resolve embeddings config: %v", err)
		} else if embCfg.Provider == "" {
			failD("LEXCITE_USE_EMBEDDINGS=1 but LEXCITE_EMBEDDINGS_PROVIDER is empty — searches will return no results")
		} else {
			prov, err := embeddings.NewFromConfig(embCfg)
			if err != nil {
				failD("%v", err)
			} else {
				printOK("", fmt.Sprintf("provider %s, model %s", embCfg.Provider, prov.ModelID()))
				if embCfg.Provider == "openai" && embCfg.APIKey == "" {
					printWarn("", "LEXCITE_EMBEDDINGS_API_KEY is empty — embedding requests will be rejected")
				}
				// A live round-trip validates key, base URL and model in one go.
				if vec, err := prov.Embed(cmd.Context(), "doctor probe"); err != nil {
					failD("embedding request failed: %v", err)
				} else {
					printOK("", fmt.Sprintf("embedding round-trip OK (dim=%d)", len(vec)))
				}
			}
		}
	} else {
		printWarn("", "skipped (configuration not loaded)")
	}
	fmt.Println()

	// ── Check 5: persisted semantic index ─────────────────────────────────────
	fmt.Println("[ Semantic index ]")
	if loadErr == nil {
		manifest := filepath.Join(cfg.IndexDir, "index_manifest.json")
		if _, err := os.Stat(manifest); os.IsNotExist(err) {
			printSkip("", fmt.Sprintf("no persisted index at %s — built on first embedding-enabled index run", cfg.IndexDir))
		} else {
			idx, err := index.Load(cfg.IndexDir)
			if err != nil {
				failD("persisted index is unusable: %v\n     Re-run 'lexcite index' to rebuild it.", err)
			} else {
				printOK("", fmt.Sprintf("loadable — %d page(s), dim %d, model %s", len(idx.Pages), idx.Manifest.Dim, idx.Manifest.ModelID))
			}
		}
	} else {
		printWarn("", "skipped (configuration not loaded)")
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. lexcite is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
