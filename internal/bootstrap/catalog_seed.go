package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/validation"
)

// CatalogImporter is the write side of the catalog used by the seed loader
type CatalogImporter interface {
	ImportTags(ctx context.Context, tags []domain.Tag) (int, error)
	ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)
}

// SeedResult counts what a seed run submitted and newly wrote
type SeedResult struct {
	TagsSubmitted        int
	TagsWritten          int
	IngredientsSubmitted int
	IngredientsWritten   int
}

// SeedCatalog loads tags and ingredients from JSON files and imports them.
// Entries already present are left alone, so the seed can be rerun safely.
func SeedCatalog(ctx context.Context, importer CatalogImporter, tagsPath, ingredientsPath string) (SeedResult, error) {
	slog.Info(LogMsgSeedingCatalog, "tags", tagsPath, "ingredients", ingredientsPath)
	var result SeedResult

	tags, err := LoadTags(tagsPath)
	if err != nil {
		return result, err
	}
	ingredients, err := LoadIngredients(ingredientsPath)
	if err != nil {
		return result, err
	}

	result.TagsSubmitted = len(tags)
	if result.TagsWritten, err = importer.ImportTags(ctx, tags); err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedImportTags, err)
	}
	result.IngredientsSubmitted = len(ingredients)
	if result.IngredientsWritten, err = importer.ImportIngredients(ctx, ingredients); err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedImportIngr, err)
	}

	slog.Info(LogMsgCatalogSeeded,
		"tags_written", result.TagsWritten,
		"ingredients_written", result.IngredientsWritten)
	return result, nil
}

// LoadTags reads a tag seed file; names are title-cased and colors upper-cased
func LoadTags(path string) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := readSeed(path, validation.SchemaTags, &tags); err != nil {
		return nil, err
	}

	title := cases.Title(language.Und)
	for i := range tags {
		t := &tags[i]
		t.Name = title.String(strings.TrimSpace(t.Name))
		t.Color = strings.ToUpper(strings.TrimSpace(t.Color))
		t.Slug = strings.TrimSpace(t.Slug)
		if t.Name == "" || t.Color == "" || t.Slug == "" {
			return nil, fmt.Errorf("%s: %s entry %d", ErrMsgInvalidSeedEntry, path, i)
		}
	}
	return tags, nil
}

// LoadIngredients reads an ingredient seed file; names and units are lower-cased
func LoadIngredients(path string) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if err := readSeed(path, validation.SchemaIngredients, &ingredients); err != nil {
		return nil, err
	}

	lower := cases.Lower(language.Und)
	for i := range ingredients {
		in := &ingredients[i]
		in.Name = lower.String(strings.TrimSpace(in.Name))
		in.MeasurementUnit = lower.String(strings.TrimSpace(in.MeasurementUnit))
		if in.Name == "" || in.MeasurementUnit == "" {
			return nil, fmt.Errorf("%s: %s entry %d", ErrMsgInvalidSeedEntry, path, i)
		}
	}
	return ingredients, nil
}

var seedSchemas = sync.OnceValue(validation.NewSchemaValidator)

// readSeed checks a seed file against its schema before decoding it into v
func readSeed(path, schema string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedReadSeed, err)
	}
	if err := seedSchemas().ValidateBytes(data, schema); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgInvalidSeedEntry, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedParseSeed, path, err)
	}
	return nil
}
