package blob

import (
	"context"
	"io"
)

// Folder names used by the upload pipeline. Thumbnails are publicly
// reachable, product files are only handed out through audited admin reads
// and verified orders.
const (
	FolderThumbnails = "thumbnails"
	FolderProducts   = "products"
)

// Store writes a byte stream and returns a stable reference for it. The core
// never inspects the content beyond size and MIME checks done before Upload.
type Store interface {
	Upload(ctx context.Context, r io.Reader, contentType, folder, fileName string) (string, error)
}

func extensionFor(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	case "application/zip":
		return ".zip"
	}
	for i := len(fileName) - 1; i >= 0 && len(fileName)-i <= 8; i-- {
		if fileName[i] == '.' {
			return fileName[i:]
		}
	}
	return ".bin"
}
