package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorageClient writes image binaries into a single flat directory that
// the HTTP server also serves statically.
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient ensures the upload directory exists before the
// service starts accepting requests.
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorageClient{baseDir: baseDir}, nil
}

func (s *LocalStorageClient) Save(ctx context.Context, r io.Reader, filename string) (string, int64, error) {
	path := filepath.Join(s.baseDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, r)
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return path, size, nil
}

func (s *LocalStorageClient) Remove(filename string) error {
	return os.Remove(filepath.Join(s.baseDir, filename))
}

func (s *LocalStorageClient) RemoveIfExists(filename string) error {
	err := os.Remove(filepath.Join(s.baseDir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorageClient) Path(filename string) string {
	return filepath.Join(s.baseDir, filename)
}
