package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
)

// predictionOutput is the structured form of `portops predict`.
type predictionOutput struct {
	Input      model.InputParameters `json:"input" yaml:"input"`
	Prediction model.Prediction      `json:"prediction" yaml:"prediction"`
}

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Derive the recommended strategy for a set of port parameters",
		Long: `Derive the recommended strategy, optimization score and expected
efficiency for the given port parameters.

Out-of-range numbers are clamped to their bounds. Use --interactive to
fill the parameters in a form.`,
		Example: `  portops predict --capacity 80 --vessels 150 --hours 20 --cargo bulk
  portops predict --interactive
  portops predict -o json`,
		RunE: runPredict,
	}
	addInputFlags(cmd)
	addOutputFlag(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "prompt for the parameters")
	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	in, err := readInput(cmd)
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		in, err = cli.PromptInput(cmd.InOrStdin(), cmd.ErrOrStderr(), in)
		if err != nil {
			return err
		}
	}

	out := predictionOutput{Input: in, Prediction: optimizer.Derive(in)}
	if format != cli.FormatTable {
		return cli.Encode(cmd.OutOrStdout(), format, out)
	}
	return writePredictionTable(cmd.OutOrStdout(), out.Input, out.Prediction)
}

func writePredictionTable(w io.Writer, in model.InputParameters, p model.Prediction) error {
	params := cli.NewTable("Parameter", "Value")
	params.AddRow("Port Capacity", strconv.Itoa(in.PortCapacity))
	params.AddRow("Average Vessels", strconv.Itoa(in.AverageVessels))
	params.AddRow("Operating Hours", strconv.Itoa(in.OperatingHours))
	params.AddRow("Weather Conditions", string(in.Weather))
	params.AddRow("Cargo Type", string(in.Cargo))
	if err := params.Render(w); err != nil {
		return err
	}

	metrics := strings.Join([]string{
		cli.FormatMetric("Recommended Strategy", string(p.Strategy)),
		cli.FormatMetric("Optimization Score", strconv.Itoa(p.Score)),
		cli.FormatMetric("Expected Efficiency", strconv.Itoa(p.Efficiency)+"%"),
	}, "\n")
	_, err := fmt.Fprintf(w, "\n%s\n", cli.RenderBox(cli.ShipIcon+" Prediction Results", metrics))
	return err
}
