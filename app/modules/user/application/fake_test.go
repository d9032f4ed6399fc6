package userservice

import (
	"context"

	usertypes "github.com/greenside-labs/greenside/app/modules/user/domain/types"
	userdb "github.com/greenside-labs/greenside/app/modules/user/infrastructure/repositories"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	users  []usertypes.User
	nextID int64
	err    error
}

func (f *fakeRepo) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*usertypes.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].FirebaseUID == firebaseUID {
			return &f.users[i], nil
		}
	}
	return nil, userdb.ErrNotFound
}

func (f *fakeRepo) GetByID(ctx context.Context, userID int64) (*usertypes.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			return &f.users[i], nil
		}
	}
	return nil, userdb.ErrNotFound
}

func (f *fakeRepo) CreateUser(ctx context.Context, user *usertypes.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}
