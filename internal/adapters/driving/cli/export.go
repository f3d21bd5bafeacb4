package cli

import (
	"github.com/spf13/cobra"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [batch.json]",
	Short: "Render a batch artifact as a readable text report",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Report path (default: artifact name with .txt)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path, err := export.BatchToText(args[0], exportOut)
	if err != nil {
		return err
	}
	cmd.Printf("Report written: %s\n", path)
	return nil
}
