// Package main provides the CLI entry point for sheetprobe.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sheetprobe/pkg/sheetprobe"
	"sheetprobe/pkg/sheetprobe/models"
	"sheetprobe/pkg/sheetprobe/output"
	"sheetprobe/pkg/sheetprobe/probe"
)

var (
	outputPath   string
	pretty       bool
	mode         string
	format       string
	sheets       []string
	headerRow    int
	dataStartRow int
	scanDepth    int
	sampleRows   int
	sheetsDir    string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetprobe [input.xlsx]",
		Short: "Probe the structure of xlsx workbooks",
		Long: `sheetprobe opens an xlsx workbook, locates header rows, samples data
rows, infers per-column types and classifies column names, then emits
a JSON or TOON report.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "summary", "Analysis mode: summary, detailed, comprehensive")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, toon")
	rootCmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Analyze only the named sheet (repeatable)")
	rootCmd.Flags().IntVar(&headerRow, "header-row", 0, "Header row index, 1-based (0 = detect)")
	rootCmd.Flags().IntVar(&dataStartRow, "data-start-row", 0, "First data row index, 1-based (0 = header row + 1)")
	rootCmd.Flags().IntVar(&scanDepth, "scan-depth", 0, "Header detection window in rows (0 = default)")
	rootCmd.Flags().IntVar(&sampleRows, "sample-rows", 0, "Data rows to sample per sheet (0 = default)")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet report files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	var analysisMode sheetprobe.Mode
	switch mode {
	case "summary":
		analysisMode = sheetprobe.ModeSummary
	case "detailed":
		analysisMode = sheetprobe.ModeDetailed
	case "comprehensive":
		analysisMode = sheetprobe.ModeComprehensive
	default:
		return fmt.Errorf("invalid mode: %s (must be summary, detailed, or comprehensive)", mode)
	}

	if format != "json" && format != "toon" {
		return fmt.Errorf("invalid format: %s (must be json or toon)", format)
	}

	var logger *zap.Logger
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger setup failed: %w", err)
		}
		defer logger.Sync()
	}

	opts := sheetprobe.Options{
		Mode:   analysisMode,
		Sheets: sheets,
		Layout: probe.Layout{
			HeaderRow:    headerRow,
			DataStartRow: dataStartRow,
			MaxScanDepth: scanDepth,
		},
		SampleRows: sampleRows,
		Logger:     logger,
	}

	report, err := sheetprobe.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	rendered, err := render(report)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, rendered, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(rendered))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(report, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func render(report *models.Report) ([]byte, error) {
	if format == "toon" {
		s, err := output.ToTOON(report)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	return output.ToJSON(report, pretty)
}

func writeSheetFiles(report *models.Report, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range report.Sheets {
		var rendered []byte
		if format == "toon" {
			s, err := output.SheetToTOON(&sheet)
			if err != nil {
				return err
			}
			rendered = []byte(s)
		} else {
			data, err := output.SheetToJSON(&sheet, pretty)
			if err != nil {
				return err
			}
			rendered = data
		}

		ext := ".json"
		if format == "toon" {
			ext = ".toon"
		}
		filename := filepath.Join(dir, sheetName+ext)
		if err := os.WriteFile(filename, rendered, 0644); err != nil {
			return err
		}
	}

	return nil
}
