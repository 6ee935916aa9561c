package middleware

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.UserContext, error)
}

type authorizer interface {
	Allowed(role model.Role, resource, action string) (bool, error)
}

type Middleware struct {
	authn  authenticator
	authz  authorizer
	logger logger.ZapLogger
}

func NewMiddleware(authn authenticator, authz authorizer, log logger.ZapLogger) *Middleware {
	return &Middleware{
		authn:  authn,
		authz:  authz,
		logger: log,
	}
}
