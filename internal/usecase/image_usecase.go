package usecase

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"imagevault/internal/domain/entity"
	"imagevault/internal/domain/repository"
	"imagevault/internal/domain/service"
	"imagevault/pkg/errors"
	"imagevault/pkg/logger"
)

type ImageUseCase struct {
	imageRepo     repository.ImageRepository
	fileStore     service.FileStore
	compressor    service.ImageCompressor
	maxUploadSize int64
}

func NewImageUseCase(
	imageRepo repository.ImageRepository,
	fileStore service.FileStore,
	compressor service.ImageCompressor,
	maxUploadSize int64,
) *ImageUseCase {
	return &ImageUseCase{
		imageRepo:     imageRepo,
		fileStore:     fileStore,
		compressor:    compressor,
		maxUploadSize: maxUploadSize,
	}
}

type UploadInput struct {
	Reader           io.Reader
	OriginalFilename string
	MimeType         string
	SizeBytes        int64
}

// Upload runs the pipeline: validate, store, compress, persist. Validation
// failures reject the request before any side effect. Compression failures
// fall back to the original upload; only storage and persistence failures are
// fatal to the request.
func (uc *ImageUseCase) Upload(ctx context.Context, input UploadInput) (*entity.Image, error) {
	if input.SizeBytes > uc.maxUploadSize {
		return nil, errors.BadRequest("File too large", nil)
	}
	if !isAcceptedType(filepath.Ext(input.OriginalFilename), input.MimeType) {
		return nil, errors.BadRequest("Only image files (jpg, jpeg, png) are allowed!", nil)
	}

	storedName := chooseStorageName(input.OriginalFilename, time.Now())
	path, size, err := uc.fileStore.Save(ctx, input.Reader, storedName)
	if err != nil {
		return nil, errors.Internal("Failed to store uploaded file", err)
	}

	artifact := service.CompressionResult{
		Filename:  storedName,
		Path:      path,
		SizeBytes: size,
	}

	result, err := uc.compressor.Compress(ctx, path)
	if err != nil {
		// Compression is an optimization, not a correctness requirement.
		logger.Warn("Compression failed for %s, keeping original: %v", storedName, err)
	} else {
		artifact = result
		if err := uc.fileStore.Remove(storedName); err != nil {
			// The compressed file stays authoritative either way.
			logger.Warn("Failed to delete original file %s: %v", storedName, err)
		}
	}

	image := &entity.Image{
		Filename:         artifact.Filename,
		OriginalFilename: input.OriginalFilename,
		MimeType:         input.MimeType,
		StoragePath:      artifact.Path,
		SizeBytes:        artifact.SizeBytes,
		UploadedAt:       time.Now(),
	}

	stored, err := uc.imageRepo.Create(ctx, image)
	if err != nil {
		// The stored binary is now an orphan; it is not reclaimed here.
		return nil, err
	}

	return stored, nil
}

func (uc *ImageUseCase) GetByID(ctx context.Context, id string) (*entity.Image, error) {
	return uc.imageRepo.GetByID(ctx, id)
}

// Delete removes the stored binary first and the metadata record second. If
// the binary exists but cannot be removed the record is kept, so the file
// stays reachable through its metadata. A binary that is already gone is not
// an error.
func (uc *ImageUseCase) Delete(ctx context.Context, id string) error {
	image, err := uc.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.fileStore.RemoveIfExists(image.Filename); err != nil {
		return errors.Internal("Failed to delete image file", err)
	}

	return uc.imageRepo.Delete(ctx, id)
}
