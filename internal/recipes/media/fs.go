package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps images on the local filesystem under a single root
// directory. References are paths relative to that root.
type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		return nil, errors.New("media: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: create root: %w", err)
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) Save(_ context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("media: create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("media: create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("media: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("media: close file: %w", err)
	}
	return name, nil
}

func (s *FSStore) Remove(_ context.Context, ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("media: remove file: %w", err)
	}
	return nil
}

// resolve joins the reference onto the root and rejects anything that would
// escape it.
func (s *FSStore) resolve(ref string) (string, error) {
	clean := filepath.Clean("/" + ref)
	if clean == "/" || strings.Contains(ref, "..") {
		return "", fmt.Errorf("media: invalid reference %q", ref)
	}
	return filepath.Join(s.root, clean), nil
}
