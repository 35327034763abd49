package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/config"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/storage"
)

// PORTOPS_HISTORY_ENABLED maps to history.enabled.
var envKeyReplacer = strings.NewReplacer(".", "_")

// journalRetry covers SQLITE_BUSY from a second portops process.
var journalRetry = common.RetryOptions{MaxAttempts: 3, InitialDelay: 50 * time.Millisecond}

func loadSettings() (config.Settings, error) {
	return config.Load(viper.GetViper())
}

// openHistory opens and migrates the run journal. It returns
// common.ErrHistoryDisabled unless history is enabled.
func openHistory(ctx context.Context) (*storage.SQLiteStorage, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	if !settings.HistoryEnabled {
		return nil, common.ErrHistoryDisabled
	}

	store, err := storage.Open(ctx, settings.HistoryPath)
	if err != nil {
		return nil, common.NewUserError("Could not open the run history database", err)
	}
	return store, nil
}

// newRunner builds a Runner that journals to the history database when it
// is enabled. The returned cleanup func is never nil.
func newRunner(ctx context.Context, opts ...optimizer.RunnerOption) (*optimizer.Runner, *storage.SQLiteStorage, func(), error) {
	store, err := openHistory(ctx)
	switch {
	case err == nil:
		opts = append(opts, optimizer.WithStore(store), optimizer.WithRetry(journalRetry))
		return optimizer.NewRunner(opts...), store, func() { _ = store.Close() }, nil
	case errors.Is(err, common.ErrHistoryDisabled):
		return optimizer.NewRunner(opts...), nil, func() {}, nil
	default:
		return nil, nil, func() {}, err
	}
}

func addInputFlags(cmd *cobra.Command) {
	def := model.DefaultInput()
	cmd.Flags().Int("capacity", def.PortCapacity, fmt.Sprintf("port capacity (%d-%d)", model.MinPortCapacity, model.MaxPortCapacity))
	cmd.Flags().Int("vessels", def.AverageVessels, fmt.Sprintf("average vessels (%d-%d)", model.MinAverageVessels, model.MaxAverageVessels))
	cmd.Flags().Int("hours", def.OperatingHours, fmt.Sprintf("operating hours (%d-%d)", model.MinOperatingHours, model.MaxOperatingHours))
	cmd.Flags().String("weather", string(def.Weather), "weather conditions (clear, moderate, severe)")
	cmd.Flags().String("cargo", string(def.Cargo), "cargo type (general-cargo, containers, bulk)")
}

// readInput reads the input flags. Numeric values are clamped; unknown
// weather or cargo names are rejected.
func readInput(cmd *cobra.Command) (model.InputParameters, error) {
	var in model.InputParameters
	in.PortCapacity, _ = cmd.Flags().GetInt("capacity")
	in.AverageVessels, _ = cmd.Flags().GetInt("vessels")
	in.OperatingHours, _ = cmd.Flags().GetInt("hours")

	weather, _ := cmd.Flags().GetString("weather")
	w, err := model.ParseWeather(weather)
	if err != nil {
		return in, common.InvalidInput("weather", err)
	}
	in.Weather = w

	cargo, _ := cmd.Flags().GetString("cargo")
	c, err := model.ParseCargo(cargo)
	if err != nil {
		return in, common.InvalidInput("cargo", err)
	}
	in.Cargo = c

	return in.Clamp(), nil
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", string(cli.FormatTable), "output format (table, json, yaml)")
}

func outputFormat(cmd *cobra.Command) (cli.Format, error) {
	raw, _ := cmd.Flags().GetString("output")
	return cli.ParseFormat(raw)
}
