package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearshare/gearshare/internal/domain/entity"
	"github.com/gearshare/gearshare/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, content, image)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Content, p.Image)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, content, image, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.UserID, &p.Content, &p.Image,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET content = $1, image = $2, updated_at = $3
		WHERE id = $4
	`, p.Content, p.Image, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	// likes carry ON DELETE CASCADE
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const feedSelect = `
	SELECT p.id, p.content, p.image, p.created_at, p.updated_at,
	       u.id, u.username, u.image,
	       COUNT(l.user_id) AS like_count,
	       COALESCE(BOOL_OR(l.user_id = $1), false) AS liked
	FROM posts p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN likes l ON l.post_id = p.id
`

func (r *PostRepository) Feed(ctx context.Context, viewerID int64) ([]entity.PostView, error) {
	rows, err := r.pool.Query(ctx, feedSelect+`
		GROUP BY p.id, u.id
		ORDER BY p.created_at DESC
	`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanViews(rows)
}

func (r *PostRepository) FeedByAuthor(ctx context.Context, viewerID, authorID int64) ([]entity.PostView, error) {
	rows, err := r.pool.Query(ctx, feedSelect+`
		WHERE p.user_id = $2
		GROUP BY p.id, u.id
		ORDER BY p.created_at DESC
	`, viewerID, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanViews(rows)
}

func (r *PostRepository) Favorites(ctx context.Context, viewerID int64) ([]entity.PostView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.content, p.image, p.created_at, p.updated_at,
		       u.id, u.username, u.image,
		       (SELECT COUNT(*) FROM likes lc WHERE lc.post_id = p.id) AS like_count,
		       true AS liked
		FROM likes l
		JOIN posts p ON p.id = l.post_id
		JOIN users u ON u.id = p.user_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanViews(rows)
}

func (r *PostRepository) View(ctx context.Context, viewerID, postID int64) (*entity.PostView, error) {
	row := r.pool.QueryRow(ctx, feedSelect+`
		WHERE p.id = $2
		GROUP BY p.id, u.id
	`, viewerID, postID)

	v := entity.PostView{}
	if err := scanView(row, &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *PostRepository) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE user_id = $1 AND post_id = $2
	`, userID, postID)
	if err != nil {
		return false, err
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO likes (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, postID)
	if err != nil {
		return false, err
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanView(row rowScanner, v *entity.PostView) error {
	return row.Scan(&v.ID, &v.Content, &v.Image, &v.CreatedAt, &v.UpdatedAt,
		&v.User.UserID, &v.User.Username, &v.User.Image,
		&v.LikeCount, &v.Liked)
}

func scanViews(rows pgx.Rows) ([]entity.PostView, error) {
	views := make([]entity.PostView, 0)
	for rows.Next() {
		v := entity.PostView{}
		if err := scanView(rows, &v); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
