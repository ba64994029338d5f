package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the résumé preview as a standalone HTML page",
	Long:  "Renders the stored session (or an exported envelope given with --input) as a complete HTML page with the template stylesheet inlined.",
	RunE:  runRender,
}

var (
	renderInput    string
	renderOutput   string
	renderTemplate string
	renderTheme    string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to an exported JSON envelope (default: stored session)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "resume.html", "Path to output HTML file")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template override (modern, classic, creative, professional, minimal)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Theme override (dark-blue, emerald, purple, rose, slate)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), cfg, renderInput)
	if err != nil {
		return err
	}
	applyStyle(sess, renderTemplate, renderTheme)

	snap := sess.Snapshot()
	page, err := rendering.RenderPage(snap.Document, snap.Template, snap.Theme)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if err := storage.WriteFileAtomic(renderOutput, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s template (%s) to %s\n", snap.Template, snap.Theme, renderOutput)
	return nil
}
