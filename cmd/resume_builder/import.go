package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <envelope.json>",
	Short: "Replace the stored session with an exported JSON envelope",
	Long:  "Reads an exported envelope, keeping whatever fields can be read, and stores it as the current session. Schema problems are reported as warnings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if err := storage.Save(cmd.Context(), store, sess); err != nil {
		return err
	}

	snap := sess.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s (%d%% complete)\n", args[0], store.Dir(), snap.Completion)
	return nil
}
