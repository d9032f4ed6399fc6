package usertypes

import "time"

// User is an authenticated account. Identity comes from Firebase; the row
// here anchors round ownership.
type User struct {
	ID          int64     `json:"id"`
	FirebaseUID string    `json:"firebase_uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
