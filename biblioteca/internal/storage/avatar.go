package storage

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/pkg/errors"
)

const avatarName = "avatar"

// FS keeps avatars on local disk as <root>/<userID>/avatar<ext>.
type FS struct {
	root string
}

func NewFS(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "mkdir upload dir")
	}
	return &FS{root: root}, nil
}

// Save replaces any previous avatar of the user and returns the path relative to root.
func (s *FS) Save(ctx context.Context, userID int64, ext string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := strconv.FormatInt(userID, 10)
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		return "", errors.Wrap(err, "mkdir")
	}

	old, _ := filepath.Glob(filepath.Join(s.root, dir, avatarName+".*"))

	rel := filepath.Join(dir, avatarName+ext)
	tmp, err := os.CreateTemp(filepath.Join(s.root, dir), avatarName+"-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "create temp")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "write")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "close")
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, rel)); err != nil {
		return "", errors.Wrap(err, "rename")
	}

	for _, p := range old {
		if filepath.Base(p) != avatarName+ext {
			_ = os.Remove(p)
		}
	}
	return filepath.ToSlash(rel), nil
}

func (s *FS) Open(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errs.ErrNotFound, "avatar file")
		}
		return nil, err
	}
	return data, nil
}

func (s *FS) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(errs.ErrInvalidArgument, "avatar path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}
