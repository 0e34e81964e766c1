package application

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/domain/entity"
	repo "github.com/gearshare/gearshare/internal/domain/repository"
)

// DeviceService manages the gaming devices listed on a profile.
type DeviceService struct {
	Repo         repo.DeviceRepository
	GCS          *storage.Client
	GCSBucket    string
	Logger       *logrus.Logger
	DefaultImage string
}

func NewDeviceService(r repo.DeviceRepository, gcs *storage.Client, bucket string, logger *logrus.Logger, defaultImage string) *DeviceService {
	return &DeviceService{Repo: r, GCS: gcs, GCSBucket: bucket, Logger: logger, DefaultImage: defaultImage}
}

// Add registers a device for the requester, with an optional photo.
func (s *DeviceService) Add(ctx context.Context, userID int64, name, comment string, img *ImageUpload) (*entity.Device, error) {
	d := &entity.Device{UserID: userID, Name: name, Comment: comment, Image: s.DefaultImage}
	if img != nil {
		url, err := uploadImage(ctx, s.GCS, s.GCSBucket, "devices", userID, img)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("user_id", userID).Error("device image upload failed")
			}
			return nil, err
		}
		d.Image = url
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// List returns a user's devices. Public: device lists are part of the profile.
func (s *DeviceService) List(ctx context.Context, userID int64) ([]entity.Device, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Remove deletes a device. Owner only.
func (s *DeviceService) Remove(ctx context.Context, userID, deviceID int64) error {
	d, err := s.Repo.GetByID(ctx, deviceID)
	if err != nil || d == nil {
		return ErrDeviceNotFound
	}
	if d.UserID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, deviceID)
}
