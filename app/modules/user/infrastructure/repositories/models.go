package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the bun model for the users table.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          int64     `bun:"id,pk,autoincrement"`
	FirebaseUID string    `bun:"firebase_uid,notnull,unique"`
	Email       string    `bun:"email,notnull"`
	DisplayName string    `bun:"display_name"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
