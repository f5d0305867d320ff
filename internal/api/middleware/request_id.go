package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader заголовок с ID запроса для трассировки между сервисами
const requestIDHeader = "X-Request-ID"

const requestIDKey contextKey = "requestID"

// RequestID middleware проставляет ID запроса: берет из входящего заголовка
// или генерирует новый, и дублирует его в ответ
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает ID запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
