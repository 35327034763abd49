package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/config"
	"github.com/Veraticus/portops/internal/tui"
	"github.com/Veraticus/portops/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the Port Operations Optimizer dashboard.

Tabs: Prediction, Model Comparison, Dataset Info and Documentation.
Press ? inside the dashboard for key bindings.`,
		RunE: runDashboard,
	}
	addDashboardFlags(cmd)
	return cmd
}

func addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "", fmt.Sprintf("color theme (%s)", strings.Join(themes.Names, ", ")))
	cmd.Flags().String("tab", "prediction", "tab to open first (prediction, comparison, dataset, docs)")
	cmd.Flags().Bool("no-sidebar", false, "hide the About sidebar")
	cmd.Flags().Bool("inline", false, "render inline instead of using the alternate screen")
	addInputFlags(cmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	themeName, _ := cmd.Flags().GetString("theme")
	if themeName == "" {
		themeName = viper.GetString(config.KeyTheme)
	}
	tabName, _ := cmd.Flags().GetString("tab")
	noSidebar, _ := cmd.Flags().GetBool("no-sidebar")
	inline, _ := cmd.Flags().GetBool("inline")

	tab, err := tui.ParseTab(tabName)
	if err != nil {
		return common.InvalidInput("tab", err)
	}
	in, err := readInput(cmd)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	// Log lines on stderr would tear the alternate screen.
	if settings.LogFile == "" {
		if err := common.SetupLoggerTo(io.Discard, settings.LogLevel, settings.LogFormat); err != nil {
			return err
		}
	}

	runner, _, cleanup, err := newRunner(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	slog.Debug("Starting dashboard", "theme", themeName, "tab", tab.String(), "history", settings.HistoryEnabled)

	return tui.Run(ctx,
		tui.WithRunner(runner),
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithInput(in),
		tui.WithInitialTab(tab),
		tui.WithSidebar(!noSidebar),
		tui.WithAltScreen(!inline),
	)
}
