package files

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/typesupply/feafofum/logs"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

type ReadFile func(ctx context.Context, path string) (string, error)

func (Module) ReadFile() ReadFile {
	return func(ctx context.Context, path string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
}

// WriteFile replaces path with text through a temporary file in the same directory.
type WriteFile func(ctx context.Context, path string, text string) error

func (Module) WriteFile(
	logger logs.Logger,
) WriteFile {
	return func(ctx context.Context, path string, text string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
		if err := writeAtomic(dir, path, []byte(text)); err != nil {
			return err
		}
		logger.DebugContext(ctx, "file written",
			"path", path,
			"bytes", len(text),
		)
		return nil
	}
}

func writeAtomic(dir string, dest string, content []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := os.FileMode(filePerm)
	if stat, err := os.Stat(dest); err == nil {
		perm = stat.Mode().Perm()
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}

type Exists func(path string) (bool, error)

func (Module) Exists() Exists {
	return func(path string) (bool, error) {
		stat, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return !stat.IsDir(), nil
	}
}
