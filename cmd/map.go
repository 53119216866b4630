package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextransition/lexcite-cli/internal/mapping"
)

var mapCmd = &cobra.Command{
	Use:   "map <ipc-section>",
	Short: "Map an IPC section to its BNS successor",
	Long: `Resolve an IPC section reference ("302", "IPC 420", "Section 304-B") to
its Bharatiya Nyaya Sanhita equivalent. Lookup tries an exact section match,
then numeric-token extraction, then fuzzy matching over known sections.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
}

func runMap(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	m := mapping.Lookup(query)
	if m == nil {
		printMiss("", "no mapping found")
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
