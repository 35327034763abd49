package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/config"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/storage"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded optimization runs",
		Long: `List optimization runs recorded in the history database, newest first.

History is off by default. Enable it with --history, the history.enabled
config key or PORTOPS_HISTORY_ENABLED=true.`,
		RunE: runHistoryList,
	}
	cmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show (0 for all)")
	addOutputFlag(cmd)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
	addOutputFlag(show)
	cmd.AddCommand(show)

	backup := &cobra.Command{
		Use:   "backup <file>",
		Short: "Write a verified copy of the history database",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryBackup,
	}
	cmd.AddCommand(backup)

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return common.InvalidInput("limit", fmt.Errorf("must not be negative"))
	}

	store, err := openHistory(cmd.Context())
	if err != nil {
		return historyError(err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if runs == nil {
		runs = []model.RunRecord{}
	}

	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, runs)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo("No runs recorded yet. Try: portops run --history"))
		return err
	}

	tbl := cli.NewTable("ID", "When", "Cargo", "Strategy", "Score", "Efficiency")
	for _, r := range runs {
		tbl.AddRow(
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format(time.DateTime),
			string(r.Input.Cargo),
			string(r.Prediction.Strategy),
			strconv.Itoa(r.Prediction.Score),
			pct(r.Prediction.Efficiency),
		)
	}
	return tbl.Render(w)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return common.InvalidInput("id", err)
	}

	store, err := openHistory(cmd.Context())
	if err != nil {
		return historyError(err)
	}
	defer func() { _ = store.Close() }()

	run, err := store.GetRun(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("No run with id %d", id), err)
		}
		return err
	}

	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, run)
	}

	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(w, "%s\n", cli.SubtleStyle.Render(
		fmt.Sprintf("Run %d at %s", run.ID, run.CreatedAt.Local().Format(time.DateTime)))); err != nil {
		return err
	}
	return writePredictionTable(w, run.Input, run.Prediction)
}

func runHistoryBackup(cmd *cobra.Command, args []string) error {
	dest, err := filepath.Abs(config.ExpandPath(args[0]))
	if err != nil {
		return common.InvalidInput("file", err)
	}

	store, err := openHistory(cmd.Context())
	if err != nil {
		return historyError(err)
	}
	defer func() { _ = store.Close() }()

	info, err := store.Backup(cmd.Context(), dest)
	if err != nil {
		if errors.Is(err, storage.ErrBackupExists) {
			return common.NewUserError("Backup file already exists: "+dest, err)
		}
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("Backed up %d runs (schema v%d) to %s", info.Runs, info.SchemaVersion, info.Path)))
	return err
}

func historyError(err error) error {
	if errors.Is(err, common.ErrHistoryDisabled) {
		return common.NewUserError("Run history is disabled. Enable it with --history or history.enabled: true", err)
	}
	return err
}
