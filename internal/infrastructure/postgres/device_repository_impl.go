package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearshare/gearshare/internal/domain/entity"
	"github.com/gearshare/gearshare/internal/domain/repository"
)

type DeviceRepository struct {
	pool *pgxpool.Pool
}

func NewDeviceRepository(pool *pgxpool.Pool) *DeviceRepository {
	return &DeviceRepository{pool: pool}
}

func (r *DeviceRepository) Create(ctx context.Context, d *entity.Device) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO devices (user_id, name, comment, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, d.UserID, d.Name, d.Comment, d.Image)

	return row.Scan(&d.ID, &d.CreatedAt)
}

func (r *DeviceRepository) GetByID(ctx context.Context, id int64) (*entity.Device, error) {
	d := &entity.Device{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, comment, image, created_at
		FROM devices
		WHERE id = $1
	`, id)

	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Comment, &d.Image,
		&d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return d, nil
}

func (r *DeviceRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Device, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, comment, image, created_at
		FROM devices
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]entity.Device, 0)
	for rows.Next() {
		d := entity.Device{}
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Comment, &d.Image,
			&d.CreatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (r *DeviceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.DeviceRepository = (*DeviceRepository)(nil)
