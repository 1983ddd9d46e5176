package server

import (
	"context"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/refresher"
)

// Refresher defines the cache warming behavior needed by the server.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() refresher.Status
	RefreshNow(ctx context.Context) (dataset.Result, error)
}
