package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how complete the résumé is",
	Long:  "Prints the completion estimate of the stored session (or an envelope given with --input) and an outline of the sections that would be rendered.",
	RunE:  runProgress,
}

var progressInput string

func init() {
	progressCmd.Flags().StringVarP(&progressInput, "input", "i", "", "Path to an exported JSON envelope (default: stored session)")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), cfg, progressInput)
	if err != nil {
		return err
	}

	snap := sess.Snapshot()
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintProgress(snap.Document, snap.Template, snap.Theme, snap.Completion)
	printer.PrintOutline(extract.FromView(rendering.BuildView(snap.Document, snap.Template, snap.Theme)))
	return nil
}
