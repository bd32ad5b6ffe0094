package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/syskit/fdio"
	"github.com/joshuapare/syskit/fsutil"
	"github.com/joshuapare/syskit/mem"
	"github.com/spf13/cobra"
)

var copyBufSize int

func init() {
	cmd := newCopyCmd()
	cmd.Flags().IntVar(&copyBufSize, "bufsize", 64*1024, "Transfer buffer size in bytes")
	rootCmd.AddCommand(cmd)
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy a file through raw descriptors",
		Long: `The copy command duplicates a file using full-transfer descriptor I/O:
data is staged into a temp file in the destination directory, flushed with
fdatasync, and renamed into place, so the destination is never observed
half-written.

Example:
  syskit copy big.pack /mnt/backup/big.pack
  syskit copy --bufsize 1048576 big.pack copy.pack`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args[0], args[1])
		},
	}
}

func runCopy(srcPath, dstPath string) error {
	if copyBufSize <= 0 {
		return fmt.Errorf("bufsize must be positive, got %d", copyBufSize)
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	tmp, err := fsutil.TempFile(filepath.Dir(dstPath), filepath.Base(dstPath)+".XXXXXX")
	if err != nil {
		return fmt.Errorf("stage temp file: %w", err)
	}
	printVerbose("staging into %s\n", tmp.Name())

	copied, err := copyDescriptors(int(src.Fd()), int(tmp.Fd()))
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dstPath)
	}
	if err != nil {
		fsutil.UnlinkOrWarn(tmp.Name())
		return err
	}

	printInfo("copied %d bytes to %s\n", copied, dstPath)
	return nil
}

// copyDescriptors moves everything readable from srcFd to dstFd through a
// checked-allocator buffer, then flushes data to disk.
func copyDescriptors(srcFd, dstFd int) (int64, error) {
	buf := mem.MustAlloc(copyBufSize)
	defer mem.Free(buf)

	var total int64
	for {
		n, err := fdio.ReadFull(srcFd, buf)
		if err != nil {
			return total, fmt.Errorf("read source: %w", err)
		}
		if n > 0 {
			if _, err := fdio.WriteFull(dstFd, buf[:n]); err != nil {
				return total, fmt.Errorf("write destination: %w", err)
			}
			total += int64(n)
		}
		if n < len(buf) {
			break
		}
	}
	if err := fdio.Fdatasync(dstFd); err != nil {
		return total, fmt.Errorf("flush destination: %w", err)
	}
	return total, nil
}
