package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
)

// Заголовки аутентификации, проставляемые API-шлюзом после проверки токена.
// Сервис доверяет шлюзу и не валидирует токен повторно.
const (
	headerUserID         = "X-User-ID"
	headerOrganizationID = "X-Organization-ID"
)

type contextKey string

const (
	userIDKey         contextKey = "userID"
	organizationIDKey contextKey = "organizationID"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовки идентификации и кладет их в контекст запроса
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := parseIDHeader(r, headerUserID)
			if err != nil {
				logger.Warn("%s %s - missing or invalid %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid identity headers")
				return
			}

			organizationID, err := parseIDHeader(r, headerOrganizationID)
			if err != nil {
				logger.Warn("%s %s - missing or invalid %s header", r.Method, r.URL.Path, headerOrganizationID)
				handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid identity headers")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, organizationIDKey, organizationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// OrganizationIDFromContext возвращает ID организации из контекста запроса
func OrganizationIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(organizationIDKey).(int64)
	return id, ok
}

func parseIDHeader(r *http.Request, name string) (int64, error) {
	raw := r.Header.Get(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
