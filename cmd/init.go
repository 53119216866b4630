package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and create the corpus directory",
	Long: `Create ~/.lexcite/lexcite.yaml with defaults, a ~/.lexcite/.env template
for embeddings configuration, and the corpus directory. Existing files are
left untouched. Running init is optional — every command works against the
defaults without it.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	printSection("lexcite init")

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		printSkip("", fmt.Sprintf("config already exists: %s", cfgPath))
	} else {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK("", fmt.Sprintf("dotenv template ready: %s", envPath))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.CorpusDir, 0o755); err != nil {
		return fmt.Errorf("cannot create corpus dir %s: %w", cfg.CorpusDir, err)
	}
	printOK("", fmt.Sprintf("corpus directory ready: %s", cfg.CorpusDir))
	printInfo("", "drop PDF files there and run 'lexcite index'")
	return nil
}
