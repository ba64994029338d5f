package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the résumé as a PDF",
	Long:  "Renders the stored session (or an exported envelope given with --input) to an A4 PDF named after the résumé owner.",
	RunE:  runPDF,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the résumé as a JSON envelope",
	Long:  "Writes the stored session as a JSON envelope with export metadata, ready to be imported again.",
	RunE:  runExport,
}

var (
	exportInput    string
	exportOutDir   string
	exportEngine   string
	exportTemplate string
	exportTheme    string
)

func init() {
	for _, c := range []*cobra.Command{pdfCmd, exportCmd} {
		c.Flags().StringVarP(&exportInput, "input", "i", "", "Path to an exported JSON envelope (default: stored session)")
		c.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Directory to write the export to (default from config)")
	}
	pdfCmd.Flags().StringVar(&exportEngine, "engine", "", "PDF engine: paint or browser (default from config)")
	pdfCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template override")
	pdfCmd.Flags().StringVar(&exportTheme, "theme", "", "Theme override")

	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(exportCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	return runExportFormat(cmd, export.FormatPDF)
}

func runExport(cmd *cobra.Command, _ []string) error {
	return runExportFormat(cmd, export.FormatJSON)
}

func runExportFormat(cmd *cobra.Command, format export.Format) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if exportEngine != "" {
		cfg.PDFEngine = exportEngine
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	dir := outputDir(cfg, exportOutDir)

	sess, err := loadSession(cmd.Context(), cfg, exportInput)
	if err != nil {
		return err
	}
	applyStyle(sess, exportTemplate, exportTheme)

	exporter, err := newExporter(cfg)
	if err != nil {
		return err
	}
	path, err := exporter.Write(cmd.Context(), sess, format, dir)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		info, statErr := os.Stat(path)
		if statErr == nil {
			observability.NewPrinter(cmd.OutOrStdout()).PrintExport(string(format), path, int(info.Size()))
			return nil
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}

func outputDir(cfg config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.OutputDir
}
