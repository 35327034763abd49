package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Backup errors.
var (
	ErrBackupExists      = errors.New("backup destination already exists")
	ErrBackupCorrupted   = errors.New("backup integrity check failed")
	ErrInvalidBackupPath = errors.New("invalid backup path")
)

// BackupInfo describes a completed backup.
type BackupInfo struct {
	Path          string `json:"path" yaml:"path"`
	Runs          int    `json:"runs" yaml:"runs"`
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	FileSize      int64  `json:"file_size" yaml:"file_size"`
}

// Backup writes a consistent copy of the journal to destPath and verifies it.
func (s *SQLiteStorage) Backup(ctx context.Context, destPath string) (*BackupInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(destPath, "destPath"); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(destPath) || strings.ContainsAny(destPath, `'";`) || filepath.Clean(destPath) != destPath {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBackupPath, destPath)
	}
	if _, err := os.Stat(destPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrBackupExists, destPath)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return nil, fmt.Errorf("failed to checkpoint WAL: %w", err)
	}

	// #nosec G201 - destPath is validated above
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", destPath)); err != nil {
		return nil, fmt.Errorf("failed to write backup: %w", err)
	}

	info, err := inspectBackup(ctx, destPath)
	if err != nil {
		return nil, err
	}

	slog.Info("Backed up run history",
		"path", destPath,
		"runs", info.Runs,
		"size", info.FileSize)
	return info, nil
}

func inspectBackup(ctx context.Context, path string) (*BackupInfo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return nil, err
	}
	if result != "ok" {
		return nil, fmt.Errorf("%w: %s", ErrBackupCorrupted, result)
	}

	info := &BackupInfo{Path: path}
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&info.SchemaVersion); err != nil {
		return nil, fmt.Errorf("failed to get schema version: %w", err)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&info.Runs); err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	info.FileSize = stat.Size()
	return info, nil
}
