package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"imagevault/internal/domain/entity"
	"imagevault/internal/domain/repository"
	"imagevault/pkg/errors"
)

type mongoImageRepository struct {
	collection *mongo.Collection
}

func NewMongoImageRepository(db *mongo.Database) repository.ImageRepository {
	return &mongoImageRepository{
		collection: db.Collection("images"),
	}
}

func (r *mongoImageRepository) Create(ctx context.Context, image *entity.Image) (*entity.Image, error) {
	result, err := r.collection.InsertOne(ctx, image)
	if err != nil {
		return nil, errors.Internal("Failed to create image metadata", err)
	}

	stored := *image
	stored.ID = result.InsertedID.(primitive.ObjectID)
	return &stored, nil
}

func (r *mongoImageRepository) GetByID(ctx context.Context, id string) (*entity.Image, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never match a record.
		return nil, errors.NotFound("Image", err)
	}

	var image entity.Image
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Image", err)
		}
		return nil, errors.Internal("Failed to get image metadata", err)
	}

	return &image, nil
}

func (r *mongoImageRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.NotFound("Image", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Internal("Failed to delete image metadata", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Image", nil)
	}

	return nil
}
