package application

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/domain/entity"
	repo "github.com/gearshare/gearshare/internal/domain/repository"
)

// UserService covers the self-service profile operations and public
// profile lookups.
type UserService struct {
	Repo      repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, gcs *storage.Client, bucket string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// GetProfile returns the public profile of any user.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateUsername changes the display name. A no-op rename is reported so
// the handler can skip the write message.
func (s *UserService) UpdateUsername(ctx context.Context, userID int64, username string) (*entity.User, bool, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, false, ErrUserNotFound
	}
	if u.Username == username {
		return u, false, nil
	}
	u.Username = username
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// UploadAvatar stores a new profile image and updates the row.
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, img *ImageUpload) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	url, err := uploadImage(ctx, s.GCS, s.GCSBucket, "avatars", userID, img)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("avatar upload failed")
		}
		return nil, err
	}
	u.Image = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
