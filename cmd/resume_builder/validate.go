package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
)

var (
	validateSchema string
)

var validateCmd = &cobra.Command{
	Use:   "validate <envelope.json>",
	Short: "Validate an exported JSON envelope against its schema",
	Long:  `Validate an exported JSON envelope against the built-in envelope schema, or against a schema file given with --schema.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Validate against this JSON Schema file instead of the envelope schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaName := "the envelope schema"
	var err error
	if validateSchema != "" {
		schemaName = validateSchema
		err = schemas.ValidateJSON(validateSchema, args[0])
	} else {
		err = schemas.ValidateEnvelopeFile(args[0])
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		printer.PrintValidation(nil)
		return nil
	case errors.As(err, &validationErr):
		printer.PrintValidation(validationErr.Errors)
		return fmt.Errorf("%s does not match %s (%d problems)", args[0], schemaName, len(validationErr.Errors))
	default:
		return err
	}
}
