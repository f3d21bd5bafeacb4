package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/storage/sqlite"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/writer/fsjson"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/connectors/filesystem"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/services"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

// indexSubdir is where the searchable chunk index lives, under the output directory.
const indexSubdir = "search_index"

var (
	convertOut        string
	convertMaxMB      int
	convertChunkChars int
	convertRecursive  bool
	convertIndex      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file-or-directory...]",
	Short: "Convert documents into JSON batch files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output directory")
	convertCmd.Flags().IntVar(&convertMaxMB, "max-mb", 0, "Maximum batch file size in megabytes")
	convertCmd.Flags().IntVar(&convertChunkChars, "chunk-chars", 0, "Maximum characters per chunk")
	convertCmd.Flags().BoolVarP(&convertRecursive, "recursive", "r", true, "Recurse into directories")
	convertCmd.Flags().BoolVar(&convertIndex, "index", false, "Build a searchable chunk index")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	outDir := convertOut
	if !cmd.Flags().Changed("out") {
		outDir = settings.ResolveOutDir()
	}
	maxMB := convertMaxMB
	if !cmd.Flags().Changed("max-mb") {
		maxMB = settings.ResolveMaxBatchMB()
	}
	chunkChars := convertChunkChars
	if !cmd.Flags().Changed("chunk-chars") {
		chunkChars = settings.ResolveMaxChunkChars()
	}
	buildIndex := convertIndex || (!cmd.Flags().Changed("index") && settings.BuildIndex)

	ctx := cmd.Context()

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

	conn := filesystem.New(args, convertRecursive)
	sources, errs := conn.Discover(ctx)
	go func() {
		for err := range errs {
			logger.Warn("discovery: %v", err)
		}
	}()

	report, runErr := svc.Run(ctx, sources)

	// The summary covers everything done before a failure; batches
	// already written remain valid output either way.
	cmd.Print(report.Summary())
	if runErr != nil {
		return fmt.Errorf("conversion failed: %w", runErr)
	}
	return nil
}
