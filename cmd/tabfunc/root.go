package main

import (
	"github.com/sgostarter/libtabulated/codec"
	"github.com/sgostarter/libtabulated/tabulated"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabfunc",
		Short: "Tabulate, inspect, convert and store tabulated functions",
		Long: `tabfunc works with functions given as ordered (x, y) samples.

Functions are read and written as whitespace separated text:
  bare     <count> <x0> <y0> ... <xN> <yN>
  factory  same bytes as bare, read into the selected backend
  tagged   <backend> <count> <x0> <y0> ...
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "yaml config file")
	flags.StringVarP(&a.cfg.Backend, "backend", "b", a.cfg.Backend,
		"backend for created functions ("+string(tabulated.KindArray)+", "+string(tabulated.KindLinkedList)+")")
	flags.StringVarP(&a.cfg.Format, "format", "f", a.cfg.Format,
		"wire format ("+codec.FormatBare.String()+", "+codec.FormatFactory.String()+", "+codec.FormatTagged.String()+")")
	flags.StringVarP(&a.input, "in", "i", "-", "input file, - for stdin")

	cmd.AddCommand(
		newTabulateCmd(a),
		newEvalCmd(a),
		newConvertCmd(a),
		newDescribeCmd(a),
		newIntegrateCmd(a),
		newStoreCmd(a),
		newDemoCmd(a),
	)

	return cmd
}
