// Package sources defines the collaborators that deliver raw basketball rows
// and the wrappers shared by every implementation.
package sources

import (
	"context"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
)

// Dataset names, shared by sources, caches, logs and metrics.
const (
	DatasetStatLines = "stat_lines"
	DatasetTeamLines = "team_lines"
	DatasetBios      = "players"
	DatasetRosters   = "rosters"
	DatasetCatalog   = "teams"
)

// StatSource fetches normalized per-player and per-team game lines.
type StatSource interface {
	StatLines(ctx context.Context) ([]games.StatLine, error)
	TeamLines(ctx context.Context) ([]games.TeamGameLine, error)
}

// CatalogSource fetches the team id to display name catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]teams.CatalogEntry, error)
}

// BioSource fetches player bios and roster history.
type BioSource interface {
	Bios(ctx context.Context) ([]players.Bio, error)
	Rosters(ctx context.Context) ([]players.RosterAssignment, error)
}

// Source combines every dataset a snapshot needs.
type Source interface {
	StatSource
	CatalogSource
	BioSource
}
