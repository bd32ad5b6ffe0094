//go:build !unix

package fdio

// Raw descriptor I/O is only implemented for unix platforms; the sync
// helpers in this package work everywhere.

func Read(fd int, p []byte) (int, error) { return 0, ErrUnsupported }

func Write(fd int, p []byte) (int, error) { return 0, ErrUnsupported }

func ReadFull(fd int, p []byte) (int, error) { return 0, ErrUnsupported }

func WriteFull(fd int, p []byte) (int, error) { return 0, ErrUnsupported }

func Dup(fd int) (int, error) { return -1, ErrUnsupported }
