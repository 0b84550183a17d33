package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/schemas"
)

// writeJSON validates v against schemaRel when the schema can be found, then writes
// it indented to outPath or stdout.
func writeJSON(v any, outPath, schemaRel string) error {
	if schemaRel != "" {
		if err := validateOutput(v, schemaRel); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logging.Info().Str("path", outPath).Msg("output written")
	return nil
}

// validateOutput fails on schema violations and only warns when the schema itself is unusable
func validateOutput(v any, schemaRel string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		logging.Debug().Str("schema", schemaRel).Msg("schema not found; skipping output validation")
		return nil
	}

	err := schemas.ValidateValue(schemaPath, v)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}
	logging.Warn().Err(err).Str("schema", schemaRel).Msg("could not validate output against schema")
	return nil
}

// readJSONFile decodes a JSON file into v
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// splitList splits a comma-separated flag value, keeping original casing
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// printer returns the stderr summary printer when --verbose is set
func printer() *observability.Printer {
	if !settings.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}
