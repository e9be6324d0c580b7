package main

import (
	"fmt"

	"github.com/sgostarter/libtabulated/store"
	"github.com/spf13/cobra"
)

func withStore(a *app, fn func(cmd *cobra.Command, s store.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, closer, err := a.openStore()
		if err != nil {
			return err
		}

		defer closer()

		return fn(cmd, s, args)
	}
}

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep named functions in a file or redis store",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "put <key>",
			Short: "Store the input function under key",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(a, func(cmd *cobra.Command, s store.Store, args []string) error {
				f, err := a.readFunction(cmd)
				if err != nil {
					return err
				}

				return s.Put(args[0], f)
			}),
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Write the function stored under key",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(a, func(cmd *cobra.Command, s store.Store, args []string) error {
				f, err := s.Get(args[0])
				if err != nil {
					return err
				}

				return a.writeFunction(cmd, f, a.format)
			}),
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List stored keys",
			Args:  cobra.NoArgs,
			RunE: withStore(a, func(cmd *cobra.Command, s store.Store, _ []string) error {
				keys, err := s.Keys()
				if err != nil {
					return err
				}

				for _, key := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}

				return nil
			}),
		},
		&cobra.Command{
			Use:   "rm <key>",
			Short: "Remove the function stored under key",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(a, func(_ *cobra.Command, s store.Store, args []string) error {
				return s.Remove(args[0])
			}),
		},
	)

	return cmd
}
