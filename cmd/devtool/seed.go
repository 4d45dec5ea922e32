package main

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database/postgres"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load tags and ingredients into the catalog ([tags.json] [ingredients.json])"
}

func (c *SeedCommand) Run(args []string) error {
	tagsPath, ingredientsPath := config.SeedPathTags, config.SeedPathIngredients
	if len(args) > 0 {
		tagsPath = args[0]
	}
	if len(args) > 1 {
		ingredientsPath = args[1]
	}

	ctx := context.Background()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := catalog.NewService(postgres.NewCatalogRepository(pool), catalog.CacheConfig{})
	result, err := bootstrap.SeedCatalog(ctx, svc, tagsPath, ingredientsPath)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	PrintSuccess("Tags: %d submitted, %d new", result.TagsSubmitted, result.TagsWritten)
	PrintSuccess("Ingredients: %d submitted, %d new", result.IngredientsSubmitted, result.IngredientsWritten)
	return nil
}
