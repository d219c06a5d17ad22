package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image describes one stored binary in the upload directory. Records are
// written once by the upload pipeline and never updated afterwards.
type Image struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Filename         string             `json:"filename" bson:"filename"`
	OriginalFilename string             `json:"originalFilename" bson:"originalFilename"`
	MimeType         string             `json:"mimeType" bson:"mimeType"`
	StoragePath      string             `json:"-" bson:"storagePath"`
	SizeBytes        int64              `json:"sizeBytes" bson:"sizeBytes"`
	UploadedAt       time.Time          `json:"uploadedAt" bson:"uploadedAt"`
}
