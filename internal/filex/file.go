// Package filex holds small filesystem helpers used by the client for its
// local database and device key.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path (mode 0700).
// It is a no-op when path has no directory component.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadOrCreateSecret returns the contents of path. If the file does not exist
// it is created with 0600 permissions and filled by gen.
//
// A file whose length differs from size is treated as corrupted. A failed
// write removes the new file so the next call starts over.
func ReadOrCreateSecret(path string, size int, gen func(int) []byte) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) != size {
			return nil, fmt.Errorf("secret file %s: unexpected length %d", path, len(b))
		}
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := EnsureParentDir(path); err != nil {
		return nil, err
	}

	secret := gen(size)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	err = writeSecret(f, secret)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// a short file would be rejected on every later start
		_ = os.Remove(path)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return secret, nil
}

// writeSecret is swapped in tests to simulate a failing disk.
var writeSecret = func(f *os.File, b []byte) error {
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
