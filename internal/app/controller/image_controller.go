package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/storage"
	"github.com/trendybazarr/trendybazarr-backend/pkg/imagehost/cloudinary"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
)

// Only image uploads are accepted.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

const maxImageSize = 10 << 20 // 10MB

type ImageController struct {
	cloudinary *cloudinary.Client
	storage    *storage.S3Storage
}

func NewImageController(cloudinaryClient *cloudinary.Client, s3Storage *storage.S3Storage) *ImageController {
	return &ImageController{
		cloudinary: cloudinaryClient,
		storage:    s3Storage,
	}
}

// Upload receives a multipart image and hosts it on Cloudinary
// POST /api/images/upload
func (ctrl *ImageController) Upload(c *gin.Context) {
	if ctrl.cloudinary == nil {
		apperrors.RespondWithError(c, http.StatusServiceUnavailable, apperrors.UploadFailed, "Image hosting is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "An image file is required")
		return
	}

	if err := ctrl.storage.ValidateFileSize(fileHeader.Size, maxImageSize); err != nil {
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, "Image must be 10MB or smaller")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ctrl.storage.ValidateContentType(contentType, allowedImageTypes); err != nil {
		logger.Warn("Rejected image upload", map[string]interface{}{
			"filename":     fileHeader.Filename,
			"content_type": contentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.InternalError(c, "Failed to read uploaded image")
		return
	}
	defer file.Close()

	resp, err := ctrl.cloudinary.UploadImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.Error("Image hosting upload failed", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "Failed to upload image")
		return
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"filename":   fileHeader.Filename,
		"secure_url": resp.SecureURL,
	})

	c.JSON(http.StatusOK, gin.H{
		"secure_url": resp.SecureURL,
	})
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // Optional: defaults to "product-images"
}

// GeneratePresignedURL generates a presigned URL for uploading images to S3
// POST /api/images/presign
func (ctrl *ImageController) GeneratePresignedURL(c *gin.Context) {
	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		logger.Warn("Invalid content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "product-images"
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		logger.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
			"folder":       folder,
		})
		apperrors.InternalError(c, "Failed to generate presigned URL")
		return
	}

	logger.Info("Presigned URL generated", map[string]interface{}{
		"filename": req.Filename,
		"folder":   folder,
		"key":      response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
