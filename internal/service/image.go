package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/raju8309/recipe-manager/config"
)

// ImageService stores recipe images in S3 and hands back their public URL.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage decodes a data-URL base64 payload
// ("data:<mime>;base64,<data>") and writes it to the bucket under a unique
// key. Returns the object's public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, base64Data string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", &ValidationError{Field: "image_base64", Message: "must be a data-URL base64 image"}
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", &ValidationError{Field: "image_base64", Message: "missing content type"}
	}
	contentType := strings.SplitN(metaParts[1], ";", 2)[0]
	if !strings.HasPrefix(contentType, "image/") {
		return "", &ValidationError{Field: "image_base64", Message: "content type must be an image"}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", &ValidationError{Field: "image_base64", Message: "invalid base64 payload"}
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), extensionFor(contentType))

	uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	_, err = s.s3Config.Client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
