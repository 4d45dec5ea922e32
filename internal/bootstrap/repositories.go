package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/database/postgres"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Catalog      repository.Catalog
	Recipe       repository.Recipe
	Ledger       repository.Ledger
	ShoppingCart repository.ShoppingCart
	Follow       repository.Follow
	User         repository.User
}

// InitializeRepositories creates all repository implementations over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	ledger := postgres.NewLedgerRepository(dbPool)
	return &Repositories{
		Catalog:      postgres.NewCatalogRepository(dbPool),
		Recipe:       postgres.NewRecipeRepository(dbPool),
		Ledger:       ledger,
		ShoppingCart: ledger,
		Follow:       postgres.NewFollowRepository(dbPool),
		User:         postgres.NewUserRepository(dbPool),
	}
}
