package groups

import (
	"context"

	"github.com/rs/zerolog"
)

// Reconciler applies a group's resolved member list downstream.
type Reconciler interface {
	Sync(ctx context.Context, displayName string, members []string) error
}

type GroupResourceHandler struct {
	logger     *zerolog.Logger
	reconciler Reconciler
}

func NewGroupResourceHandler(logger *zerolog.Logger, reconciler Reconciler) (*GroupResourceHandler, error) {
	groupsLogger := logger.With().Str("component", "groups-handler").Logger()

	return &GroupResourceHandler{
		logger:     &groupsLogger,
		reconciler: reconciler,
	}, nil
}
