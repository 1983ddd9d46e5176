package players

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

// Loader defines the contract for fetching dataset snapshots.
type Loader interface {
	Load(ctx context.Context, datasets ...string) dataset.Result
}

var playerDatasets = []string{
	sources.DatasetStatLines,
	sources.DatasetBios,
	sources.DatasetRosters,
	sources.DatasetCatalog,
}

// Service computes the player views over a fresh snapshot per call.
type Service struct {
	loader Loader
	now    func() time.Time
}

// NewService constructs a Service with the provided Loader.
func NewService(loader Loader) *Service {
	return &Service{loader: loader, now: time.Now}
}

// Averages returns one page of the per-game leaderboard.
func (s *Service) Averages(ctx context.Context, q views.Query) views.AveragesResult {
	res := s.loader.Load(ctx, playerDatasets...)
	return views.Averages(res.StatLines, metadataOf(res), q)
}

// Advanced returns one page of the advanced metrics leaderboard.
func (s *Service) Advanced(ctx context.Context, q views.Query) views.AdvancedResult {
	res := s.loader.Load(ctx, playerDatasets...)
	return views.AdvancedStats(res.StatLines, metadataOf(res), q)
}

// Profile returns one player's card. When the game lines could not be loaded
// the source error is returned instead of reporting the player as unknown.
func (s *Service) Profile(ctx context.Context, playerID string, window int) (views.ProfileResult, error) {
	res := s.loader.Load(ctx, playerDatasets...)
	if err, ok := res.Errors[sources.DatasetStatLines]; ok {
		return views.ProfileResult{}, fmt.Errorf("load player %s: %w", playerID, err)
	}
	return views.Profile(res.StatLines, metadataOf(res), playerID, window, s.now())
}

func metadataOf(res dataset.Result) views.Metadata {
	return views.NewMetadata(res.Bios, res.Rosters, res.Catalog)
}
