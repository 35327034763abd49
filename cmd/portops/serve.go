package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/service"
	"github.com/Veraticus/portops/internal/webserver"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizer as a JSON HTTP API",
		Long: `Serve the optimizer over HTTP until interrupted.

Endpoints:
  GET  /api/health
  GET  /api/predict?capacity=&vessels=&hours=&weather=&cargo=
  POST /api/run
  GET  /api/comparison
  GET  /api/dataset
  GET  /api/docs
  GET  /api/history?limit=
  GET  /api/history/{id}`,
		RunE: runServe,
	}
	cmd.Flags().Int("port", 0, "port to listen on (default from serve.port)")
	cmd.Flags().String("host", "127.0.0.1", "interface to bind")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = settings.ServePort
	}
	host, _ := cmd.Flags().GetString("host")

	var store service.RunStore
	history, err := openHistory(cmd.Context())
	switch {
	case err == nil:
		store = history
		defer func() { _ = history.Close() }()
	case !errors.Is(err, common.ErrHistoryDisabled):
		return err
	}

	srv, err := webserver.New(webserver.Config{
		Host:   host,
		Port:   port,
		Runner: optimizer.NewRunner(optimizer.WithStore(store), optimizer.WithRetry(journalRetry)),
		Store:  store,
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("portops API: http://%s/api/health", srv.Addr())))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return srv.ListenAndServe(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		if errors.Is(context.Cause(ctx), context.Canceled) {
			slog.Info("Stopping portops API")
		}
		return nil
	})
	return g.Wait()
}
