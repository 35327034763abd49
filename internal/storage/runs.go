package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/model"
)

const runColumns = `id, port_capacity, average_vessels, operating_hours, weather, cargo,
	strategy, score, efficiency, created_at`

// SaveRun appends a run to the journal and assigns its ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.RunRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (port_capacity, average_vessels, operating_hours, weather, cargo,
			strategy, score, efficiency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.Input.PortCapacity,
		run.Input.AverageVessels,
		run.Input.OperatingHours,
		string(run.Input.Weather),
		string(run.Input.Cargo),
		string(run.Prediction.Strategy),
		run.Prediction.Score,
		run.Prediction.Efficiency,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run id: %w", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun retrieves a single run by ID.
func (s *SQLiteStorage) GetRun(ctx context.Context, id int64) (*model.RunRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.getRunTx(ctx, s.db, id)
}

func (s *SQLiteStorage) getRunTx(ctx context.Context, q queryable, id int64) (*model.RunRecord, error) {
	row := q.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*model.RunRecord, error) {
	var (
		run                      model.RunRecord
		weather, cargo, strategy string
	)
	err := sc.Scan(
		&run.ID,
		&run.Input.PortCapacity,
		&run.Input.AverageVessels,
		&run.Input.OperatingHours,
		&weather,
		&cargo,
		&strategy,
		&run.Prediction.Score,
		&run.Prediction.Efficiency,
		&run.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	run.Input.Weather = model.WeatherCondition(weather)
	run.Input.Cargo = model.CargoType(cargo)
	run.Prediction.Strategy = model.Strategy(strategy)
	return &run, nil
}
