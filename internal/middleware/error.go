package middleware

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/servererrors"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"go.uber.org/zap"
)

// ErrorHandler turns an APIHandler into an http.HandlerFunc and maps the
// returned error onto a status code and JSON body.
func (mw *Middleware) ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var serverError *servererrors.ServerError
		var validationError *validate.ValidationError

		switch {
		case errors.As(err, &serverError):
			handlerutils.WriteErrorJSON(w, serverError.StatusCode, serverError.Message, serverError.Errors)
		case errors.As(err, &validationError):
			handlerutils.WriteErrorJSON(w, http.StatusUnprocessableEntity, validationError.Message, validationError.Fields)
		case errors.Is(err, store.ErrProductNotFound),
			errors.Is(err, store.ErrOrderNotFound),
			errors.Is(err, store.ErrUserNotFound):
			handlerutils.WriteErrorJSON(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, auth.ErrInvalidCredentials),
			errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrSessionExpired):
			handlerutils.WriteErrorJSON(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			mw.logger.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			handlerutils.WriteErrorJSON(w, http.StatusInternalServerError, "something went wrong", nil)
			return
		}

		mw.logger.Debug("request rejected",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("reason", err.Error()),
		)
	}
}
