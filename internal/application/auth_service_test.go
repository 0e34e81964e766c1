package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare/internal/domain/entity"
	"github.com/gearshare/gearshare/internal/domain/repository"
	"github.com/gearshare/gearshare/pkg/helpers"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("not found")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", 24*time.Hour)
	return NewAuthService(repo, jwt, nil, "/no-image.png")
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	u, token, _, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "/no-image.png", u.Image)

	// stored password is hashed
	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)

	lu, ltoken, _, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, ltoken)
	assert.Equal(t, u.ID, lu.ID)

	// both tokens decode to the same user id
	claims1, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	claims2, err := svc.JWT.Parse(ltoken)
	require.NoError(t, err)
	assert.Equal(t, claims1.UserID, claims2.UserID)
	assert.Equal(t, "a@x.com", claims2.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, token, _, err := svc.Register(ctx, "bob", "a@x.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, token)
	assert.Len(t, repo.users, 1)
}

// blindUserRepo never sees existing rows on lookup, so a duplicate insert
// reaches the unique index the way a racing registration would.
type blindUserRepo struct {
	*fakeUserRepo
}

func (r *blindUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("not found")
}

func (r *blindUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			r.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	r.mu.Unlock()
	return r.fakeUserRepo.Create(ctx, u)
}

func TestRegisterDuplicateEmailRace(t *testing.T) {
	repo := &blindUserRepo{fakeUserRepo: newFakeUserRepo()}
	jwt := helpers.NewJWTManager("test-secret", 24*time.Hour)
	svc := NewAuthService(repo, jwt, nil, "/no-image.png")
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// the lookup misses, the insert conflicts; still a conflict to the caller
	_, token, _, err := svc.Register(ctx, "bob", "a@x.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, token)
	assert.Len(t, repo.users, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, token, _, err := svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	u, _, _, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	got, err := svc.GetMe(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetMe(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPublicViewOmitsPasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	u, _, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	pub := u.Public()
	assert.Equal(t, u.ID, pub.UserID)
	assert.Equal(t, "a@x.com", pub.Email)
	// PublicUser has no password field at all; make sure the hash does not
	// leak through any of its string fields.
	assert.NotContains(t, []string{pub.Username, pub.Email, pub.Image}, u.Password)
}
