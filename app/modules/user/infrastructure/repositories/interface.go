package userdb

import (
	"context"

	usertypes "github.com/greenside-labs/greenside/app/modules/user/domain/types"
)

// Repository handles database interactions for users.
type Repository interface {
	GetByFirebaseUID(ctx context.Context, firebaseUID string) (*usertypes.User, error)
	GetByID(ctx context.Context, userID int64) (*usertypes.User, error)
	CreateUser(ctx context.Context, user *usertypes.User) error
}
