package middleware

import (
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/servererrors"
	"go.uber.org/zap"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate rejects requests without a valid session and stores the
// signed-in user on the request context.
func (mw *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			handlerutils.WriteErrorJSON(w, http.StatusUnauthorized, servererrors.ErrMissingToken.Error(), nil)
			return
		}

		uc, err := mw.authn.Authenticate(r.Context(), token)
		if err != nil {
			handlerutils.WriteErrorJSON(w, http.StatusUnauthorized, err.Error(), nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), uc)))
	})
}

// Require lets the request through only if the signed-in user's role may
// perform action on resource. Must run after Authenticate.
func (mw *Middleware) Require(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uc := auth.FromContext(r.Context())
			if uc == nil {
				handlerutils.WriteErrorJSON(w, http.StatusUnauthorized, servererrors.ErrUnauthorized.Error(), nil)
				return
			}

			ok, err := mw.authz.Allowed(uc.User.Role, resource, action)
			if err != nil {
				mw.logger.Error("authorization check failed", zap.Error(err))
				handlerutils.WriteErrorJSON(w, http.StatusInternalServerError, "something went wrong", nil)
				return
			}
			if !ok {
				handlerutils.WriteErrorJSON(w, http.StatusForbidden, servererrors.ErrForbidden.Error(), nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
