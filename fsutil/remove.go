package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// UnlinkOrWarn removes the file at path. Failure is returned to the caller
// and also logged as a warning, except when the path does not exist: that
// case returns the error silently, since there is nothing left to clean up.
func UnlinkOrWarn(path string) error {
	return warnOnFailure("file", path, os.Remove(path))
}

// RmdirOrWarn removes the directory at path, with the same warn-on-failure
// policy as UnlinkOrWarn. The directory must be empty.
func RmdirOrWarn(path string) error {
	return warnOnFailure("directory", path, os.Remove(path))
}

// RemoveOrWarn dispatches to RmdirOrWarn or UnlinkOrWarn on isDir.
func RemoveOrWarn(isDir bool, path string) error {
	if isDir {
		return RmdirOrWarn(path)
	}
	return UnlinkOrWarn(path)
}

func warnOnFailure(kind, path string, err error) error {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return err
	}
	log().Warn("unable to remove "+kind, "path", path, "error", err)
	return err
}
