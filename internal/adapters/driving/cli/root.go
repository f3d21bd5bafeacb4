// Package cli implements the command-line interface of the converter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/config/file"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "arquivos",
	Short: "Convert documents into size-bounded JSON batches for AI ingestion",
	Long: `arquivos reads text-bearing documents (txt, pdf, docx, doc), splits their
text into chunks and packs the chunks into JSON batch files that never
exceed a configured byte ceiling. The batches are ready to feed retrieval
or AI ingestion pipelines; an optional local index makes them searchable.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.arquivos)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings reads the persisted defaults. A missing or unreadable
// config file falls back to built-in defaults with a warning.
func loadSettings() file.Settings {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("could not load config: %v", err)
		return file.Settings{}
	}
	return store.Settings()
}
