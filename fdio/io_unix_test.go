//go:build unix

package fdio

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func pipeFixture(t *testing.T) (r, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestRead_DeliversAvailableBytes(t *testing.T) {
	r, w := pipeFixture(t)

	_, err := w.WriteString("hello")
	require.NoError(t, err)

	buf := make([]byte, 64)
	n, err := Read(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf[:5]))
}

func TestRead_EmptyBufferTouchesNothing(t *testing.T) {
	n, err := Read(-1, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestRead_BadDescriptor(t *testing.T) {
	buf := make([]byte, 4)
	_, err := Read(-1, buf)
	require.Error(t, err)
	require.ErrorIs(t, err, unix.EBADF)
}

func TestRead_RestartsAfterInterrupt(t *testing.T) {
	r, w := pipeFixture(t)
	_, err := w.WriteString("abc")
	require.NoError(t, err)

	orig := sysRead
	defer func() { sysRead = orig }()

	attempts := 0
	sysRead = func(fd int, p []byte) (int, error) {
		attempts++
		switch attempts {
		case 1:
			return -1, unix.EINTR
		case 2:
			return -1, unix.EAGAIN
		default:
			return orig(fd, p)
		}
	}

	buf := make([]byte, 8)
	n, err := Read(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, attempts)
}

func TestReadFull_AssemblesChunks(t *testing.T) {
	r, w := pipeFixture(t)

	// Two writes of 4 and 6 bytes; ReadFull keeps going until it has 10.
	_, err := w.Write([]byte("abcd"))
	require.NoError(t, err)
	_, err = w.Write([]byte("efghij"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	buf := make([]byte, 10)
	n, err := ReadFull(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "abcdefghij", string(buf))
}

func TestReadFull_ShortOnEarlyEOF(t *testing.T) {
	r, w := pipeFixture(t)

	_, err := w.Write([]byte("xyz"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	buf := make([]byte, 10)
	n, err := ReadFull(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "xyz", string(buf[:3]))
}

func TestReadFull_ImmediateEOF(t *testing.T) {
	r, w := pipeFixture(t)
	require.NoError(t, w.Close())

	buf := make([]byte, 10)
	n, err := ReadFull(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestWriteFull_DrainsLargeBuffer(t *testing.T) {
	r, w := pipeFixture(t)

	// Larger than the pipe buffer, so the kernel forces short writes.
	payload := bytes.Repeat([]byte("0123456789abcdef"), 16*1024)

	done := make(chan []byte)
	go func() {
		got, _ := io.ReadAll(r)
		done <- got
	}()

	n, err := WriteFull(int(w.Fd()), payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.NoError(t, w.Close())

	require.Equal(t, payload, <-done)
}

func TestWriteFull_ZeroProgressIsENOSPC(t *testing.T) {
	orig := sysWrite
	defer func() { sysWrite = orig }()
	sysWrite = func(fd int, p []byte) (int, error) { return 0, nil }

	n, err := WriteFull(1, []byte("data"))
	require.Error(t, err)
	require.ErrorIs(t, err, unix.ENOSPC)
	assert.Equal(t, 0, n)
}

func TestWriteFull_ReportsPartialProgressOnError(t *testing.T) {
	orig := sysWrite
	defer func() { sysWrite = orig }()

	calls := 0
	sysWrite = func(fd int, p []byte) (int, error) {
		calls++
		if calls == 1 {
			return 4, nil
		}
		return -1, unix.EIO
	}

	n, err := WriteFull(1, []byte("eightbyte"))
	require.ErrorIs(t, err, unix.EIO)
	assert.Equal(t, 4, n)
}

func TestWrite_RestartsAfterInterrupt(t *testing.T) {
	_, w := pipeFixture(t)

	orig := sysWrite
	defer func() { sysWrite = orig }()

	attempts := 0
	sysWrite = func(fd int, p []byte) (int, error) {
		attempts++
		if attempts == 1 {
			return -1, unix.EINTR
		}
		return orig(fd, p)
	}

	n, err := Write(int(w.Fd()), []byte("ok"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, attempts)
}

func TestDup_SharesTheOpenFile(t *testing.T) {
	r, w := pipeFixture(t)

	dupFd, err := Dup(int(w.Fd()))
	require.NoError(t, err)
	defer unix.Close(dupFd)

	_, err = WriteFull(dupFd, []byte("via dup"))
	require.NoError(t, err)

	buf := make([]byte, 7)
	n, err := ReadFull(int(r.Fd()), buf)
	require.NoError(t, err)
	require.Equal(t, "via dup", string(buf[:n]))
}

func TestDup_BadDescriptor(t *testing.T) {
	fd, err := Dup(-1)
	require.Error(t, err)
	require.Equal(t, -1, fd)
}
