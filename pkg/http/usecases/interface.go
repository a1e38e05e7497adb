package usecases

import (
	"context"

	"github.com/lintang-b-s/Flightx/pkg/engine"
)

type RoutingEngine interface {
	Snapshot() *engine.Snapshot
	Reload(ctx context.Context) error
}
