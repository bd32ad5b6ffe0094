package main

import (
	"github.com/joshuapare/syskit/pathutil"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newResolveCmd())
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <prefix> <path>",
		Short: "Resolve a path against a prefix",
		Long: `The resolve command qualifies a relative path with a prefix. Absolute
paths and an empty prefix pass through unchanged; the prefix is prepended
verbatim otherwise, with no separator inserted.

Example:
  syskit resolve "work/" objects/pack
  syskit resolve "work/" /etc/passwd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("%s\n", pathutil.ResolveWithPrefix(args[0], args[1]))
			return nil
		},
	}
}
