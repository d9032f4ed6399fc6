package userauth

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID attaches the authenticated user's ID to the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user's ID. The second return
// is false when the request did not pass through the auth middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
