// Package batch implements CSV batch processing of captured notifications.
package batch

import (
	"fmt"

	"brnotif/notif-parse/cmd/root"
	"brnotif/notif-parse/internal/common"
	"brnotif/notif-parse/internal/notiferror"

	"github.com/spf13/cobra"
)

var (
	inputFile     string
	outputFile    string
	minConfidence float64
)

// Cmd is the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a CSV of captured notifications",
	Long: `Read a CSV file of captured notifications (Package, Title, Body columns)
and write one parse result per row. Rows whose confidence falls below the
threshold are marked "review" instead of "auto".`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file")
	Cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "Confidence threshold for auto status (default from config)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func run(cmd *cobra.Command, args []string) error {
	threshold := minConfidence
	if !cmd.Flags().Changed("min-confidence") && root.Cfg != nil {
		threshold = root.Cfg.Parse.MinConfidence
	}

	rows, err := common.ReadCSVFile[common.NotificationRow](inputFile)
	if err != nil {
		return &notiferror.ReadError{FilePath: inputFile, Err: err}
	}
	if len(rows) == 0 {
		return &notiferror.InvalidFormatError{
			FilePath: inputFile,
			Reason:   "no notification rows found (expected Package, Title, Body columns)",
		}
	}

	results := common.ParseRows(rows, threshold)

	if err := common.WriteCSVFile(results, outputFile); err != nil {
		return fmt.Errorf("error writing results: %w", err)
	}

	root.Log.WithField("count", len(results)).Info("Batch processing complete")
	return nil
}
