package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiskStore keeps uploads under baseDir/<folder>/ and returns URL paths the
// HTTP layer serves from /uploads/. Default store for single-node deploys.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Upload(ctx context.Context, r io.Reader, contentType, folder, fileName string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", uuid.NewString(), time.Now().Format("20060102150405"), extensionFor(contentType, fileName))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("can't create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			zap.L().Error("can't remove partial upload", zap.Error(rmErr))
		}
		return "", fmt.Errorf("can't write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("can't close file: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}
