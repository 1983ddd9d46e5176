package teams

import (
	"context"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

// Loader defines the contract for fetching dataset snapshots.
type Loader interface {
	Load(ctx context.Context, datasets ...string) dataset.Result
}

// Service computes the team views over a fresh snapshot per call.
type Service struct {
	loader      Loader
	seasonGames int
}

// NewService constructs a Service. seasonGames sizes the Pythagorean
// projection; non-positive values use the view default.
func NewService(loader Loader, seasonGames int) *Service {
	return &Service{loader: loader, seasonGames: seasonGames}
}

// Options lists the selectable teams and window bounds.
func (s *Service) Options(ctx context.Context) views.TeamOptions {
	res := s.loader.Load(ctx, sources.DatasetStatLines, sources.DatasetTeamLines)
	return views.Options(res.StatLines, res.TeamLines)
}

// Summary returns the standings table.
func (s *Service) Summary(ctx context.Context, q views.Query) views.SummaryResult {
	res := s.loader.Load(ctx, sources.DatasetTeamLines)
	return views.TeamSummary(res.TeamLines, q, s.seasonGames)
}

// FourFactors returns the four factors table.
func (s *Service) FourFactors(ctx context.Context, q views.Query) views.FactorsResult {
	res := s.loader.Load(ctx, sources.DatasetTeamLines)
	return views.FourFactors(res.TeamLines, q)
}
