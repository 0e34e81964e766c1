package repository

import (
	"context"

	"github.com/gearshare/gearshare/internal/domain/entity"
)

// DeviceRepository defines the interface for device operations.
type DeviceRepository interface {
	Create(ctx context.Context, d *entity.Device) error
	GetByID(ctx context.Context, id int64) (*entity.Device, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Device, error)
	Delete(ctx context.Context, id int64) error
}
