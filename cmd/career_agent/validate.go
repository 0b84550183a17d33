package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/schemas"
)

var (
	validateSchema string
	validateJSON   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a saved JSON output against its schema",
	Long: `Validate a JSON file written by another command.

--schema takes a schema file path or a schema name such as gap_analysis or learning_path.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema name or path to a JSON Schema file")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON file to validate")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath, err := resolveSchemaFlag(validateSchema)
	if err != nil {
		return err
	}

	if err := schemas.ValidateJSON(schemaPath, validateJSON); err != nil {
		return fmt.Errorf("%s: %w", validateJSON, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSON)
	return nil
}

// resolveSchemaFlag accepts a schema file path or a bare schema name
func resolveSchemaFlag(value string) (string, error) {
	if strings.HasSuffix(value, ".json") {
		return value, nil
	}
	rel := filepath.Join("schemas", value+".schema.json")
	if path := schemas.ResolveSchemaPath(rel); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("unknown schema %q", value)
}
