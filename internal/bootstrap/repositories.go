package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driftbyte/fluxforge/internal/database/postgres"
	"github.com/driftbyte/fluxforge/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Game repository.Game
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Game: postgres.NewGameRepository(dbPool),
	}
}
