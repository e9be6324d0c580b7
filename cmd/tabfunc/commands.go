package main

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/sgostarter/libtabulated/codec"
	"github.com/sgostarter/libtabulated/functions"
	"github.com/sgostarter/libtabulated/tabulated"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func newTabulateCmd(a *app) *cobra.Command {
	var (
		left, right float64
		count       int
	)

	cmd := &cobra.Command{
		Use:   "tabulate <function>",
		Short: "Sample exp, sin, cos, tan, ln or log:<base> on an even grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := parseFunction(args[0])
			if err != nil {
				return err
			}

			f, err := a.registry.Tabulate(fn, left, right, count)
			if err != nil {
				return err
			}

			return a.writeFunction(cmd, f, a.format)
		},
	}

	cmd.Flags().Float64Var(&left, "left", 0, "left bound")
	cmd.Flags().Float64Var(&right, "right", 1, "right bound")
	cmd.Flags().IntVar(&count, "count", 11, "number of points")

	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x>...",
		Short: "Evaluate the input function at the given points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([]float64, 0, len(args))

			for _, arg := range args {
				x, err := cast.ToFloat64E(arg)
				if err != nil {
					return fmt.Errorf("%w: x %q", tabulated.ErrValidation, arg)
				}

				xs = append(xs, x)
			}

			f, err := a.readFunction(cmd)
			if err != nil {
				return err
			}

			for _, x := range xs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", formatFloat(x), formatFloat(f.Evaluate(x)))
			}

			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var to, toBackend string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode the input function in another format or backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}

			f, err := a.readFunction(cmd)
			if err != nil {
				return err
			}

			kind := a.kind()
			if toBackend != "" {
				kind = tabulated.Kind(toBackend)
			}

			if f.Kind() != kind {
				if f, err = a.registry.CreateKindFromPoints(kind, tabulated.Collect(f)); err != nil {
					return err
				}
			}

			return a.writeFunction(cmd, f, format)
		},
	}

	cmd.Flags().StringVar(&to, "to", codec.FormatTagged.String(), "output format")
	cmd.Flags().StringVar(&toBackend, "to-backend", "", "output backend, defaults to --backend")

	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print domain, hash and y statistics of the input function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.readFunction(cmd)
			if err != nil {
				return err
			}

			ys := make(stats.Float64Data, 0, f.PointsCount())
			for p := range f.Points() {
				ys = append(ys, p.Y)
			}

			mustFloat := func(fn func() (float64, error)) float64 {
				v, _ := fn()

				return v
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "backend: %s\n", f.Kind())
			fmt.Fprintf(out, "points: %d\n", f.PointsCount())
			fmt.Fprintf(out, "domain: [%s, %s]\n", formatFloat(f.LeftDomainBorder()), formatFloat(f.RightDomainBorder()))
			fmt.Fprintf(out, "hash: %016x\n", f.Hash())
			fmt.Fprintf(out, "y min: %s\n", formatFloat(mustFloat(ys.Min)))
			fmt.Fprintf(out, "y max: %s\n", formatFloat(mustFloat(ys.Max)))
			fmt.Fprintf(out, "y mean: %s\n", formatFloat(mustFloat(ys.Mean)))
			fmt.Fprintf(out, "y median: %s\n", formatFloat(mustFloat(ys.Median)))
			fmt.Fprintf(out, "y stddev: %s\n", formatFloat(mustFloat(ys.StandardDeviation)))

			return nil
		},
	}
}

func newIntegrateCmd(a *app) *cobra.Command {
	var left, right, step float64

	cmd := &cobra.Command{
		Use:   "integrate [function]",
		Short: "Integrate a named function, or the input function, with the trapezoid rule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				fn  tabulated.Function
				err error
			)

			if len(args) == 1 {
				fn, err = parseFunction(args[0])
			} else {
				fn, err = a.readFunction(cmd)
			}

			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("left") {
				left = fn.LeftDomainBorder()
			}

			if !cmd.Flags().Changed("right") {
				right = fn.RightDomainBorder()
			}

			v, err := functions.Integrate(fn, left, right, step)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))

			return nil
		},
	}

	cmd.Flags().Float64Var(&left, "left", 0, "left bound, defaults to the domain border")
	cmd.Flags().Float64Var(&right, "right", 0, "right bound, defaults to the domain border")
	cmd.Flags().Float64Var(&step, "step", 0.001, "integration step")

	return cmd
}
