package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
)

type datasetOutput struct {
	Dataset model.DatasetInfo `json:"dataset" yaml:"dataset"`
	Metrics []model.Metric    `json:"metrics" yaml:"metrics"`
}

func datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Describe the evaluation dataset",
		RunE:  runDataset,
	}
	addOutputFlag(cmd)
	return cmd
}

func runDataset(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	d := optimizer.Dataset()
	out := datasetOutput{Dataset: d, Metrics: optimizer.DatasetMetrics(d)}
	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, out)
	}

	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(w, cli.FormatTitle(cli.FolderIcon, "Dataset Information")); err != nil {
		return err
	}
	tbl := cli.NewTable("Metric", "Value")
	for _, m := range out.Metrics {
		tbl.AddRow(m.Label, m.Value)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", cli.TitleStyle.Render("Features")); err != nil {
		return err
	}
	for i, f := range d.Features {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, f); err != nil {
			return err
		}
	}
	return nil
}
