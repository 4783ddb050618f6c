package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	authmodels "github.com/lockenroll/LR-SalonService/internal/service/auth/models"
)

const (
	msgMissingToken = "Anmeldung erforderlich"
	msgInvalidToken = "Sitzung abgelaufen oder ungültig"
	msgAdminOnly    = "nur für Administratoren"
)

type ctxKey int

const identityKey ctxKey = iota

// TokenVerifier интерфейс проверки токенов
type TokenVerifier interface {
	VerifyToken(tokenString string) (*authmodels.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладет идентичность пользователя в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов.
// Должен стоять после Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if !identity.IsAdmin() {
				logger.Warn("%s %s - Admin access denied for user=%s", r.Method, r.URL.Path, identity.UserID)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity извлекает идентичность пользователя из контекста
func GetIdentity(ctx context.Context) (*authmodels.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*authmodels.Identity)
	return identity, ok
}
