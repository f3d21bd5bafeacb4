package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/storage/sqlite"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/services"
)

var (
	searchOut   string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search indexed chunks by term",
	Long:  `Searches the chunk index produced by "convert --index" and prints ranked hits.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchOut, "out", "o", "", "Output directory holding the index")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	outDir := searchOut
	if !cmd.Flags().Changed("out") {
		outDir = settings.ResolveOutDir()
	}

	store, err := sqlite.NewStore(filepath.Join(outDir, indexSubdir))
	if err != nil {
		return fmt.Errorf("open chunk index: %w", err)
	}
	defer store.Close()

	svc, err := services.NewSearchService(store)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results, err := svc.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Printf("No results for: %s\n", query)
		return nil
	}

	cmd.Printf("Results for: %s\n\n", query)
	for i, r := range results {
		cmd.Printf("%2d. %s (chunk %d, %d chars, score %d)\n", i+1, r.Filename, r.ChunkIndex, r.CharCount, r.Score)
		cmd.Printf("    source:  %s\n", r.SourcePath)
		cmd.Printf("    batch:   %s\n\n", r.ArtifactPath)
	}
	return nil
}
