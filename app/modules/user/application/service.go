package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	usertypes "github.com/greenside-labs/greenside/app/modules/user/domain/types"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
	userdb "github.com/greenside-labs/greenside/app/modules/user/infrastructure/repositories"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// Service manages user accounts.
type Service interface {
	ResolveUserID(ctx context.Context, claims *userauth.Claims) (int64, error)
	GetUser(ctx context.Context, userID int64) (*usertypes.User, error)
}

// UserService implements the Service interface.
type UserService struct {
	repo   userdb.Repository
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo userdb.Repository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// ResolveUserID maps a validated token to a local user, creating the row on
// first sight of the Firebase identity.
func (s *UserService) ResolveUserID(ctx context.Context, claims *userauth.Claims) (int64, error) {
	user, err := s.repo.GetByFirebaseUID(ctx, claims.FirebaseUID)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, userdb.ErrNotFound) {
		return 0, fmt.Errorf("resolve user: %w", err)
	}

	created := &usertypes.User{
		FirebaseUID: claims.FirebaseUID,
		Email:       claims.Email,
	}
	if err := s.repo.CreateUser(ctx, created); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "User created",
		slog.Int64("user_id", created.ID),
		slog.String("firebase_uid", claims.FirebaseUID),
	)
	return created.ID, nil
}

// GetUser fetches a user profile.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*usertypes.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, userdb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
