package service

import "context"

// CompressionResult names the artifact the persistence step should record.
// When Compressed is false the pipeline fell back to the original upload.
type CompressionResult struct {
	Filename   string
	Path       string
	SizeBytes  int64
	Compressed bool
}

// ImageCompressor re-encodes a stored upload into a smaller JPEG.
type ImageCompressor interface {
	Compress(ctx context.Context, srcPath string) (CompressionResult, error)
}
