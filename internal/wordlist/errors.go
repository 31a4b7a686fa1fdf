package wordlist

import (
	"errors"
	"io/fs"
)

var errIsDirectory = errors.New("is a directory")

// unwrapPathError strips the *fs.PathError layer so the path is not repeated
// in FileAccessError messages. fs sentinels stay reachable through Unwrap.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
