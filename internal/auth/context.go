package auth

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type contextKey struct{}

type UserContext struct {
	User      model.User
	SessionID string
	Token     string
}

func WithUser(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, uc)
}

// FromContext returns the signed-in user placed by the auth middleware, or nil.
func FromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(contextKey{}).(*UserContext)
	return uc
}

// GetUserID is empty when no user is signed in.
func GetUserID(ctx context.Context) string {
	if uc := FromContext(ctx); uc != nil {
		return uc.User.ID
	}
	return ""
}
