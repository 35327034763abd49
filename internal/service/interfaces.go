// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/portops/internal/model"
)

// RunStore persists the optimization run journal.
type RunStore interface {
	// SaveRun appends a run and sets its ID.
	SaveRun(ctx context.Context, run *model.RunRecord) error
	// ListRuns returns the most recent runs first. A limit <= 0 returns all.
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	GetRun(ctx context.Context, id int64) (*model.RunRecord, error)
	Close() error
}
