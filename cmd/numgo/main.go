// Package main provides the numgo command line tool.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/numgo-ml/numgo/mathfn"
	"github.com/numgo-ml/numgo/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if err := newCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numgo",
		Short:         "N-dimensional array engine for Go",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numgo %s\n", version)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a small tensor pipeline and print the results",
		RunE:  demoHandler,
	}

	describeCmd := &cobra.Command{
		Use:   "describe SHAPE",
		Short: "Print shape, stride and layout information for a shape like 2x3x4",
		Args:  cobra.ExactArgs(1),
		RunE:  describeHandler,
	}

	rootCmd.AddCommand(versionCmd, demoCmd, describeCmd)
	return rootCmd
}

func demoHandler(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	x, err := tensor.Linspace(0.0, 1.0, 12)
	if err != nil {
		return err
	}
	grid := x.View()
	if err := tensor.AssignTo(mathfn.Sin[float64](tensor.MulScalar[float64](grid, 3.14159)), grid); err != nil {
		return err
	}
	fmt.Fprintf(out, "sin(pi*x) on 12 points: %v\n", x)

	m, err := tensor.FromFunc(tensor.Shape{3, 4}, func(idx []int) float64 {
		return float64(idx[0]*4 + idx[1])
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "m             = %v\n", m)
	fmt.Fprintf(out, "m transposed  = %v\n", m.View().Transpose().Materialize())

	rows, err := tensor.ReduceAxes(tensor.AddOp[float64](), m.View(), 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "row sums      = %v\n", rows)

	diag, err := m.View().Diagonal(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "diagonal      = %v\n", diag.Materialize())
	fmt.Fprintf(out, "total         = %v\n", tensor.SumOf[float64](m.View()))
	return nil
}

func describeHandler(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args[0])
	if err != nil {
		return err
	}
	if err := shape.Validate(); err != nil {
		return err
	}

	var data [][]string
	for _, layout := range []tensor.Layout{tensor.RowMajor, tensor.ColMajor} {
		strides := shape.Strides(layout)
		data = append(data, []string{
			layout.String(),
			shape.String(),
			fmt.Sprint(strides),
			strconv.Itoa(shape.Size()),
			strconv.Itoa(shape.Rank()),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"LAYOUT", "SHAPE", "STRIDES", "SIZE", "RANK"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}

func parseShape(s string) (tensor.Shape, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape = append(shape, n)
	}
	return shape, nil
}
