package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the optimization across all models",
		Long: `Run the optimization for the given port parameters and report each
model's outcome. With history enabled the run is recorded.`,
		Example: `  portops run --cargo containers
  portops run --history -o yaml`,
		RunE: runOptimize,
	}
	addInputFlags(cmd)
	addOutputFlag(cmd)
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")
	return cmd
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	in, err := readInput(cmd)
	if err != nil {
		return err
	}
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "No run was recorded.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	var opts []optimizer.RunnerOption
	if !noProgress && format == cli.FormatTable {
		bar := newModelProgressBar(cmd.ErrOrStderr())
		opts = append(opts, optimizer.WithProgress(func(name model.ModelName) {
			bar.Describe(fmt.Sprintf("[cyan][bold]%s[reset]", name))
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}))
	}

	runner, store, cleanup, err := newRunner(ctx, opts...)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := runner.Run(ctx, in)
	if err != nil {
		return err
	}

	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, result)
	}

	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(w, cli.FormatSuccess(result.Message)); err != nil {
		return err
	}
	if err := writeOutcomes(w, result.Outcomes); err != nil {
		return err
	}
	if store != nil {
		_, err = fmt.Fprintln(w, cli.SubtleStyle.Render("Recorded in "+store.Path()))
	}
	return err
}

func writeOutcomes(w io.Writer, outcomes []model.ModelOutcome) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tbl := cli.NewTable("Model", "Result", "Delta")
	for _, o := range outcomes {
		tbl.AddRow(string(o.Model), o.Result, o.Delta)
	}
	return tbl.Render(w)
}

func newModelProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(len(optimizer.Models),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Running models...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
