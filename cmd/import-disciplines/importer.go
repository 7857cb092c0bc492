package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/P3chys/catalogo-disciplinas/internal/models"
	"github.com/P3chys/catalogo-disciplinas/internal/services"
)

type importEntry struct {
	Semester string
	Name     string
}

type importSummary struct {
	Imported int
	Existing int
	Errors   int
}

// parseImport reads a mapping of semester label to discipline names. Entries
// keep the order of the file.
func parseImport(r io.Reader) ([]importEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of semester to disciplines", root.Line)
	}

	var entries []importEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		label := key.Value
		if !models.IsSemesterLabel(label) {
			return nil, fmt.Errorf("line %d: unknown semester %q", key.Line, label)
		}

		var names []string
		if err := value.Decode(&names); err != nil {
			return nil, fmt.Errorf("line %d: disciplines of %q must be a list of names: %w", value.Line, label, err)
		}

		for _, name := range names {
			if name == "" {
				return nil, fmt.Errorf("line %d: empty discipline name under %q", value.Line, label)
			}
			entries = append(entries, importEntry{Semester: label, Name: name})
		}
	}

	return entries, nil
}

// exitCode is non-zero when any entry failed to import.
func (s importSummary) exitCode() int {
	if s.Errors > 0 {
		return 1
	}
	return 0
}

func importEntries(ctx context.Context, catalog services.CatalogService, entries []importEntry, logger *zap.Logger) importSummary {
	var summary importSummary

	for _, e := range entries {
		result, err := catalog.Register(ctx, e.Name, e.Semester)
		if err != nil {
			logger.Error("Failed to import discipline",
				zap.String("name", e.Name),
				zap.String("semester", e.Semester),
				zap.Error(err),
			)
			summary.Errors++
			continue
		}

		if result.Known {
			logger.Debug("Discipline already exists", zap.String("name", e.Name))
			summary.Existing++
			continue
		}
		summary.Imported++
	}

	return summary
}
