package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"imagevault/internal/domain/entity"
	"imagevault/internal/usecase"
	"imagevault/pkg/errors"
	"imagevault/pkg/logger"
	"imagevault/pkg/response"
)

type ImageHandler struct {
	imageUseCase *usecase.ImageUseCase
	publicPrefix string
}

func NewImageHandler(imageUseCase *usecase.ImageUseCase, publicPrefix string) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		publicPrefix: publicPrefix,
	}
}

type imageView struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	URL              string    `json:"url"`
	UploadedAt       time.Time `json:"uploadedAt"`
	SizeBytes        int64     `json:"sizeBytes,omitempty"`
}

type imageBody struct {
	Success bool      `json:"success"`
	Image   imageView `json:"image"`
}

func (h *ImageHandler) view(image *entity.Image, withSize bool) imageView {
	v := imageView{
		ID:               image.ID.Hex(),
		Filename:         image.Filename,
		OriginalFilename: image.OriginalFilename,
		URL:              h.publicPrefix + "/" + image.Filename,
		UploadedAt:       image.UploadedAt,
	}
	if withSize {
		v.SizeBytes = image.SizeBytes
	}
	return v
}

func (h *ImageHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		logger.Warn("Upload request without file: %v", err)
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening uploaded file: %v", err)
		return response.Error(c, errors.Internal("Server error while uploading image", err))
	}
	defer src.Close()

	image, err := h.imageUseCase.Upload(c.Request().Context(), usecase.UploadInput{
		Reader:           src,
		OriginalFilename: file.Filename,
		MimeType:         file.Header.Get("Content-Type"),
		SizeBytes:        file.Size,
	})
	if err != nil {
		if errors.Is(err, "BAD_REQUEST") {
			logger.Warn("Rejected upload of %s: %v", file.Filename, err)
			return response.Error(c, err)
		}
		logger.Error("Error uploading image: %v", err)
		return response.Error(c, errors.Internal("Server error while uploading image", err))
	}

	return c.JSON(http.StatusCreated, imageBody{Success: true, Image: h.view(image, false)})
}

func (h *ImageHandler) GetByID(c echo.Context) error {
	image, err := h.imageUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return response.Error(c, err)
		}
		logger.Error("Error getting image: %v", err)
		return response.Error(c, errors.Internal("Server error while getting image", err))
	}

	return c.JSON(http.StatusOK, imageBody{Success: true, Image: h.view(image, true)})
}

func (h *ImageHandler) Delete(c echo.Context) error {
	err := h.imageUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return response.Error(c, err)
		}
		logger.Error("Error deleting image: %v", err)
		return response.Error(c, errors.Internal("Server error while deleting image", err))
	}

	return response.Message(c, "Image deleted successfully")
}
