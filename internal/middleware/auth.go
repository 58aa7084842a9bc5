package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"studyhub_backend/internal/metrics"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/resp"
)

// SessionCookie - имя cookie с сессионным токеном
const SessionCookie = "session_token"

type ctxKey struct{}

type Auth struct {
	serv service.AuthService
}

func NewAuth(serv service.AuthService) *Auth {
	return &Auth{serv: serv}
}

// RequireAuth - строгий вариант: без валидной сессии запрос не проходит.
// Сбой проверки тоже означает 401, доступ не выдается при недоступном хранилище
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.resolveUser(r)
		if err != nil {
			log.Error().Err(err).Msg("session check failed")
			metrics.AuthFailures.WithLabelValues("store_error").Inc()
			resp.WriteError(w, model.ErrUnauthenticated)
			return
		}
		if userID == uuid.Nil {
			metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
			resp.WriteError(w, model.ErrUnauthenticated)
			return
		}

		metrics.AuthSuccess.Inc()
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

// WithUser - мягкий вариант: кладет пользователя в контекст при валидной
// сессии и пропускает запрос дальше в любом случае
func (a *Auth) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.resolveUser(r)
		if err != nil {
			log.Warn().Err(err).Msg("session check failed, continuing as anonymous")
		}
		if err == nil && userID != uuid.Nil {
			r = r.WithContext(withUserID(r.Context(), userID))
		}

		next.ServeHTTP(w, r)
	})
}

func (a *Auth) resolveUser(r *http.Request) (uuid.UUID, error) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		// Нет cookie - нет пользователя
		return uuid.Nil, nil
	}

	return a.serv.ValidateToken(r.Context(), c.Value)
}

func withUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext - пользователь, положенный в контекст одним из middleware.
// false - запрос анонимный
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return userID, ok
}
