package application

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/domain/entity"
	repo "github.com/gearshare/gearshare/internal/domain/repository"
)

// PostService owns post CRUD, feeds and the like toggle. Edit and delete
// are gated by an ownership check against the request identity.
type PostService struct {
	Repo      repo.PostRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPostService(r repo.PostRepository, gcs *storage.Client, bucket string, logger *logrus.Logger) *PostService {
	return &PostService{Repo: r, GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// Create stores a new post, uploading the image first when one was sent.
func (s *PostService) Create(ctx context.Context, userID int64, content string, img *ImageUpload) (*entity.Post, error) {
	p := &entity.Post{UserID: userID, Content: content}
	if img != nil {
		url, err := uploadImage(ctx, s.GCS, s.GCSBucket, "posts", userID, img)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("user_id", userID).Error("post image upload failed")
			}
			return nil, err
		}
		p.Image = url
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Feed returns every post, newest first, with the viewer's like state.
func (s *PostService) Feed(ctx context.Context, viewerID int64) ([]entity.PostView, error) {
	return s.Repo.Feed(ctx, viewerID)
}

// MyPosts returns only the viewer's posts.
func (s *PostService) MyPosts(ctx context.Context, viewerID int64) ([]entity.PostView, error) {
	return s.Repo.FeedByAuthor(ctx, viewerID, viewerID)
}

// Favorites returns the posts the viewer has liked, newest like first.
func (s *PostService) Favorites(ctx context.Context, viewerID int64) ([]entity.PostView, error) {
	return s.Repo.Favorites(ctx, viewerID)
}

// Get returns one post with author and like info.
func (s *PostService) Get(ctx context.Context, viewerID, postID int64) (*entity.PostView, error) {
	v, err := s.Repo.View(ctx, viewerID, postID)
	if err != nil || v == nil {
		return nil, ErrPostNotFound
	}
	return v, nil
}

// ToggleLike flips the viewer's like on an existing post.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	if p, err := s.Repo.GetByID(ctx, postID); err != nil || p == nil {
		return false, ErrPostNotFound
	}
	return s.Repo.ToggleLike(ctx, userID, postID)
}

// Edit updates content and optionally the image. Author only.
func (s *PostService) Edit(ctx context.Context, userID, postID int64, content string, img *ImageUpload) (*entity.Post, error) {
	p, err := s.Repo.GetByID(ctx, postID)
	if err != nil || p == nil {
		return nil, ErrPostNotFound
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}

	p.Content = content
	if img != nil {
		url, err := uploadImage(ctx, s.GCS, s.GCSBucket, "posts", userID, img)
		if err != nil {
			return nil, err
		}
		p.Image = url
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post and its likes. Author only.
func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	p, err := s.Repo.GetByID(ctx, postID)
	if err != nil || p == nil {
		return ErrPostNotFound
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, postID)
}
