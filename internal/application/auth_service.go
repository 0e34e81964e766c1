package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/domain/entity"
	repo "github.com/gearshare/gearshare/internal/domain/repository"
	"github.com/gearshare/gearshare/pkg/helpers"
)

// AuthService issues tokens on successful credential checks and answers
// identity queries. It is stateless: every token is a pure 24h claim and
// the only shared resource is the user table.
type AuthService struct {
	Repo         repo.UserRepository
	JWT          *helpers.JWTManager
	Logger       *logrus.Logger
	DefaultImage string
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, defaultImage string) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger, DefaultImage: defaultImage}
}

// Register creates the user and issues a token, logging the new account in
// immediately. Duplicate emails fail with ErrEmailTaken and create no row.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, string, time.Time, error) {
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", time.Time{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	u := &entity.User{
		Email:    email,
		Password: hash,
		Username: username,
		Image:    s.DefaultImage,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// two registrations can race past the lookup above; the unique
		// index on email decides, and the loser still gets a conflict
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, "", time.Time{}, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Authenticate validates email/password without issuing a token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login validates credentials and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GetMe resolves a verified identity back to its user row. The row can be
// gone if the account was removed out of band.
func (s *AuthService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
