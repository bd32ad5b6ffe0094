package main

import (
	"fmt"

	"github.com/joshuapare/syskit/pathutil"
	"github.com/spf13/cobra"
)

var joinBufSize int

func init() {
	cmd := newJoinCmd()
	cmd.Flags().IntVar(&joinBufSize, "buf", 0, "Join into a fixed buffer of this size instead of a string")
	rootCmd.AddCommand(cmd)
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <segment>...",
		Short: "Join path segments with separator normalization",
		Long: `The join command concatenates path segments, inserting a forward slash
between segments and collapsing doubled slashes at the seams.

Example:
  syskit join a b c
  syskit join "a/" "/b"
  syskit join --buf 16 usr local bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(args)
		},
	}
}

func runJoin(args []string) error {
	if joinBufSize > 0 {
		dst := make([]byte, joinBufSize)
		n, err := pathutil.JoinInto(dst, args...)
		if err != nil {
			return fmt.Errorf("join into %d-byte buffer: %w", joinBufSize, err)
		}
		printVerbose("joined %d segments into %d of %d bytes\n", len(args), n, joinBufSize)
		printInfo("%s\n", dst[:n])
		return nil
	}
	printInfo("%s\n", pathutil.Join(args...))
	return nil
}
