package repository

import (
	"context"

	"imagevault/internal/domain/entity"
)

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) (*entity.Image, error)
	GetByID(ctx context.Context, id string) (*entity.Image, error)
	Delete(ctx context.Context, id string) error
}
