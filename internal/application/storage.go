package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/gearshare/gearshare/pkg/helpers"
)

// ImageUpload carries one multipart image from the handler into a service.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// uploadImage stores an image under <prefix>/<userID>/<uuid><ext> and
// returns its public URL.
func uploadImage(ctx context.Context, gcs *storage.Client, bucket, prefix string, userID int64, img *ImageUpload) (string, error) {
	if gcs == nil || bucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(img.Filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, fmt.Sprintf("%d", userID), id+ext))
	return helpers.UploadObject(ctx, gcs, bucket, objectPath, img.ContentType, img.Reader)
}
