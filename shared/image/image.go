// Package image moves uploaded room and food pictures into object storage.
package image

import (
	"context"
	"fmt"
	"skyline/infras/s3"
	"skyline/shared/base64"
	"skyline/shared/dto"
	"skyline/shared/failure"

	"github.com/rs/zerolog/log"
)

// Store uploads the image under directory and returns its public URL.
func Store(ctx context.Context, store s3.S3, directory string, upload dto.ImageUpload) (string, error) {
	if upload.IsMultipart() {
		url, err := store.UploadFile(ctx, directory, upload.ImageFile, upload.Image)
		if err != nil {
			return "", fmt.Errorf("failed to upload image: %w", err)
		}

		return url, nil
	}

	contentType, data, err := base64.Decode(upload.ImageData)
	if err != nil {
		return "", failure.BadRequest(err) //nolint:wrapcheck
	}

	url, err := store.UploadFileBytes(ctx, directory, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}

// Discard removes the object behind url when it lives in our bucket. Failures are only logged.
func Discard(ctx context.Context, store s3.S3, url string) {
	key, ok := store.ObjectKeyFromURL(url)
	if !ok {
		return
	}

	if err := store.DeleteFile(ctx, key); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete image")
	}
}
