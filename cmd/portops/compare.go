package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
)

type comparisonOutput struct {
	Rows     []model.ComparisonRow `json:"rows" yaml:"rows"`
	TradeOff []model.TradeOffPoint `json:"trade_off" yaml:"trade_off"`
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		Aliases: []string{"comparison"},
		Short:   "Show the model comparison table",
		RunE:    runCompare,
	}
	addOutputFlag(cmd)
	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	out := comparisonOutput{Rows: optimizer.Comparison(), TradeOff: optimizer.TradeOff()}
	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, out)
	}

	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(w, cli.FormatTitle(cli.ChartIcon, "Model Performance Comparison")); err != nil {
		return err
	}
	metrics := cli.NewTable("Model", "Accuracy", "Precision", "Recall", "F1-Score")
	for _, r := range out.Rows {
		metrics.AddRow(string(r.Model), pct(r.Accuracy), pct(r.Precision), pct(r.Recall), pct(r.F1))
	}
	if err := metrics.Render(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", cli.FormatTitle(cli.ChartIcon, "Speed vs Optimality Trade-off")); err != nil {
		return err
	}

	tradeOff := cli.NewTable("Model", "Speed", "Optimality")
	for _, p := range out.TradeOff {
		tradeOff.AddRow(string(p.Model), strconv.Itoa(p.Speed), pct(p.Optimality))
	}
	return tradeOff.Render(w)
}

func pct(v int) string {
	return strconv.Itoa(v) + "%"
}
