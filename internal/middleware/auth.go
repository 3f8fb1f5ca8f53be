package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"merchfn/internal/session"
	"merchfn/internal/types"

	"go.uber.org/zap"
)

var ErrNotAdmin = errors.New("caller is not an admin")

// AdminCaller пропускает запрос дальше, только если токен в Authorization
// принадлежит админу. Включается настройкой require_admin_caller.
func AdminCaller(v session.CallerVerifier, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := session.BearerToken(r)
			if err != nil {
				logger.Errorf("%v. More details: no bearer token", err)
				writeError(w, err, http.StatusUnauthorized, logger)
				return
			}

			caller, err := v.Verify(r.Context(), token)
			if err != nil {
				writeError(w, session.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			if !caller.Admin {
				logger.Warnf("%v. More details: user_id - %s -", ErrNotAdmin, caller.UserID)
				writeError(w, ErrNotAdmin, http.StatusForbidden, logger)
				return
			}

			// Кладем вызывающего в контекст и передаем дальше
			ctx := session.ContextWithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(types.ErrorResponse{Error: err.Error()}); errEncode != nil {
		logger.Error(errEncode)
	}
}
