package auth

import (
	"context"

	"github.com/google/uuid"
)

var _ UserResolver = (*Service)(nil)

type UserResolver interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

type userIDCtxKey struct{}

// WithUserID returns a copy of ctx carrying the resolved user identity.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
