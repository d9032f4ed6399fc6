package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	usertypes "github.com/greenside-labs/greenside/app/modules/user/domain/types"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// UserDBImpl is the concrete implementation of the Repository interface
// using bun.
type UserDBImpl struct {
	DB *bun.DB
}

// NewUserDB creates a bun-backed user repository.
func NewUserDB(db *bun.DB) *UserDBImpl {
	return &UserDBImpl{DB: db}
}

// GetByFirebaseUID looks a user up by their Firebase identity.
func (db *UserDBImpl) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*usertypes.User, error) {
	model := new(User)
	err := db.DB.NewSelect().
		Model(model).
		Where("firebase_uid = ?", firebaseUID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	user := fromUserModel(model)
	return &user, nil
}

// GetByID fetches a user by primary key.
func (db *UserDBImpl) GetByID(ctx context.Context, userID int64) (*usertypes.User, error) {
	model := new(User)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	user := fromUserModel(model)
	return &user, nil
}

// CreateUser inserts a new user and fills in the generated ID.
func (db *UserDBImpl) CreateUser(ctx context.Context, user *usertypes.User) error {
	model := &User{
		FirebaseUID: user.FirebaseUID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
	err := db.DB.NewInsert().
		Model(model).
		ExcludeColumn("id").
		Returning("id").
		Scan(ctx, &model.ID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create user", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = model.ID
	return nil
}

func fromUserModel(m *User) usertypes.User {
	return usertypes.User{
		ID:          m.ID,
		FirebaseUID: m.FirebaseUID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
	}
}
