package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/storage/sqlite"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/writer/fsjson"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/connectors/filesystem"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/services"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

var (
	watchOut        string
	watchMaxMB      int
	watchChunkChars int
	watchIndex      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory...]",
	Short: "Convert files as they appear in the watched directories",
	Long: `Watches the given directories and converts every supported file that is
created or written there. Each file becomes its own batch sequence in the
output directory. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output directory")
	watchCmd.Flags().IntVar(&watchMaxMB, "max-mb", 0, "Maximum batch file size in megabytes")
	watchCmd.Flags().IntVar(&watchChunkChars, "chunk-chars", 0, "Maximum characters per chunk")
	watchCmd.Flags().BoolVar(&watchIndex, "index", false, "Build a searchable chunk index")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	outDir := watchOut
	if !cmd.Flags().Changed("out") {
		outDir = settings.ResolveOutDir()
	}
	maxMB := watchMaxMB
	if !cmd.Flags().Changed("max-mb") {
		maxMB = settings.ResolveMaxBatchMB()
	}
	chunkChars := watchChunkChars
	if !cmd.Flags().Changed("chunk-chars") {
		chunkChars = settings.ResolveMaxChunkChars()
	}
	buildIndex := watchIndex || (!cmd.Flags().Changed("index") && settings.BuildIndex)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	writer, err := fsjson.New(outDir)
	if err != nil {
		return err
	}

	var index driven.ChunkIndex
	if buildIndex {
		store, err := sqlite.NewStore(filepath.Join(outDir, indexSubdir))
		if err != nil {
			return fmt.Errorf("open chunk index: %w", err)
		}
		defer store.Close()
		index = store
	}

	svc, err := services.NewConvertService(extractors.Default(), writer, index, chunkChars, maxMB*1024*1024)
	if err != nil {
		return err
	}

	conn := filesystem.New(args, false)
	events, err := conn.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	cmd.Printf("Watching %d directories; press Ctrl-C to stop.\n", len(args))
	for src := range events {
		// One source per run; the shared writer keeps artifact names
		// sequential across events.
		single := make(chan domain.SourceDescriptor, 1)
		single <- src
		close(single)

		report, err := svc.Run(ctx, single)
		if err != nil {
			return fmt.Errorf("conversion failed for %s: %w", src.Filename, err)
		}
		for _, artifact := range report.Artifacts {
			cmd.Printf("%s -> %s\n", src.Filename, artifact)
		}
		for _, skip := range report.Skipped {
			logger.Warn("skipped %s: %s", skip.Source.Filename, skip.Reason)
		}
	}

	cmd.Println("Watch stopped.")
	return nil
}
