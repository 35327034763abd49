package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/config"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/tui/components"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/Veraticus/portops/internal/webapi"
)

func docsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the methodology documentation",
		RunE:  runDocs,
	}
	cmd.Flags().String("format", "terminal", "output format (terminal, markdown, html)")
	cmd.Flags().Int("width", 80, "wrap width for terminal output")
	return cmd
}

func runDocs(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	w := cmd.OutOrStdout()

	switch format {
	case "markdown", "md":
		_, err := fmt.Fprint(w, optimizer.Documentation)
		return err
	case "html":
		html, err := webapi.RenderDocs(optimizer.Documentation)
		if err != nil {
			return err
		}
		_, err = w.Write(html)
		return err
	case "terminal":
		theme := themes.GetTheme(viper.GetString(config.KeyTheme))
		out, err := components.RenderMarkdown(optimizer.Documentation, theme.GlamourStyle, width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	default:
		return common.InvalidInput("format", fmt.Errorf("unknown docs format %q (want terminal, markdown or html)", format))
	}
}
