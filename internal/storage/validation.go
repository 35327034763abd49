package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidRun   = fmt.Errorf("%w: run", common.ErrInvalidInput)
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun checks a run record before it is written.
func validateRun(run *model.RunRecord) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRun)
	}
	if run.Input != run.Input.Clamp() {
		return fmt.Errorf("%w: input out of range", ErrInvalidRun)
	}
	if run.Prediction.Strategy == "" {
		return fmt.Errorf("%w: missing strategy", ErrInvalidRun)
	}
	return nil
}
