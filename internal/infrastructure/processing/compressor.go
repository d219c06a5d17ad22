package processing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"imagevault/internal/domain/service"
)

const (
	maxWidth    = 800
	jpegQuality = 80
)

// JPEGCompressor resizes a stored upload to at most maxWidth pixels wide and
// re-encodes it as JPEG next to the source, as compressed-<name>.
type JPEGCompressor struct{}

func NewJPEGCompressor() *JPEGCompressor {
	return &JPEGCompressor{}
}

func (c *JPEGCompressor) Compress(ctx context.Context, srcPath string) (service.CompressionResult, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return service.CompressionResult{}, fmt.Errorf("failed to decode image: %w", err)
	}

	// Never upscale past the original width.
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	filename := "compressed-" + filepath.Base(srcPath)
	dstPath := filepath.Join(filepath.Dir(srcPath), filename)

	out, err := os.Create(dstPath)
	if err != nil {
		return service.CompressionResult{}, fmt.Errorf("failed to create compressed file: %w", err)
	}

	if err := imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		out.Close()
		os.Remove(dstPath)
		return service.CompressionResult{}, fmt.Errorf("failed to encode image: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dstPath)
		return service.CompressionResult{}, fmt.Errorf("failed to finalize compressed file: %w", err)
	}

	stat, err := os.Stat(dstPath)
	if err != nil {
		return service.CompressionResult{}, fmt.Errorf("failed to stat compressed file: %w", err)
	}

	return service.CompressionResult{
		Filename:   filename,
		Path:       dstPath,
		SizeBytes:  stat.Size(),
		Compressed: true,
	}, nil
}
