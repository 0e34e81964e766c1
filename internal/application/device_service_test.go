package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare/internal/domain/entity"
)

type fakeDeviceRepo struct {
	mu      sync.Mutex
	seq     int64
	devices map[int64]*entity.Device
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: map[int64]*entity.Device{}}
}

func (r *fakeDeviceRepo) Create(_ context.Context, d *entity.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	d.ID = r.seq
	d.CreatedAt = time.Now()
	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *fakeDeviceRepo) GetByID(_ context.Context, id int64) (*entity.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDeviceRepo) ListByUser(_ context.Context, userID int64) ([]entity.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Device, 0)
	for _, d := range r.devices {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeDeviceRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[id]; !ok {
		return errors.New("not found")
	}
	delete(r.devices, id)
	return nil
}

func newTestDeviceService(repo *fakeDeviceRepo) *DeviceService {
	return NewDeviceService(repo, nil, "", nil, "/no-image.png")
}

func TestDeviceAddAndList(t *testing.T) {
	repo := newFakeDeviceRepo()
	svc := newTestDeviceService(repo)
	ctx := context.Background()

	d, err := svc.Add(ctx, 1, "PlayStation 5", "daily driver", nil)
	require.NoError(t, err)
	require.NotZero(t, d.ID)
	assert.Equal(t, "/no-image.png", d.Image)

	_, err = svc.Add(ctx, 2, "Switch", "", nil)
	require.NoError(t, err)

	devices, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "PlayStation 5", devices[0].Name)
	assert.Equal(t, "daily driver", devices[0].Comment)

	devices, err = svc.List(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceRemoveOwnership(t *testing.T) {
	repo := newFakeDeviceRepo()
	svc := newTestDeviceService(repo)
	ctx := context.Background()

	d, err := svc.Add(ctx, 1, "Xbox Series X", "", nil)
	require.NoError(t, err)

	err = svc.Remove(ctx, 2, d.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	devices, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	err = svc.Remove(ctx, 1, d.ID)
	require.NoError(t, err)

	devices, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceRemoveMissing(t *testing.T) {
	svc := newTestDeviceService(newFakeDeviceRepo())

	err := svc.Remove(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
