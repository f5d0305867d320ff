package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

// userIDHeader заголовок с ID пользователя, проставляется API gateway
const userIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth middleware для защищенных роутов: требует валидный X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserIDHeader(r)
		if !ok {
			handlers.RespondUnauthorized(w, "отсутствует или некорректен заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// OptionalUserID читает X-User-ID на публичных роутах
// Возвращает nil, если заголовок отсутствует или некорректен
func OptionalUserID(r *http.Request) *int64 {
	userID, ok := parseUserIDHeader(r)
	if !ok {
		return nil
	}
	return &userID
}

func parseUserIDHeader(r *http.Request) (int64, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}

	return userID, true
}
