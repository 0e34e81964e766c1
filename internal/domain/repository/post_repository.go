package repository

import (
	"context"

	"github.com/gearshare/gearshare/internal/domain/entity"
)

// PostRepository defines the interface for post and like operations.
// Feed queries take the viewer's user id so each PostView carries the
// viewer's like state.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error

	Feed(ctx context.Context, viewerID int64) ([]entity.PostView, error)
	FeedByAuthor(ctx context.Context, viewerID, authorID int64) ([]entity.PostView, error)
	Favorites(ctx context.Context, viewerID int64) ([]entity.PostView, error)
	View(ctx context.Context, viewerID, postID int64) (*entity.PostView, error)

	// ToggleLike flips the viewer's like on a post and reports the new state.
	ToggleLike(ctx context.Context, userID, postID int64) (bool, error)
}
