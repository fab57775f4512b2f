package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kly4ev/SDA-BookingService/internal/api/handlers"
)

// clientIDHeader заголовок с ID аутентифицированного клиента
// Заголовок проставляет API gateway после проверки токена
const clientIDHeader = "X-Client-ID"

type clientIDKey struct{}

// Auth middleware аутентификации по заголовку X-Client-ID
// Кладёт ID клиента в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(clientIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Client-ID")
			return
		}

		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || clientID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный ID клиента")
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey{}, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientID возвращает ID клиента из контекста запроса
func GetClientID(ctx context.Context) (int64, bool) {
	clientID, ok := ctx.Value(clientIDKey{}).(int64)
	return clientID, ok
}
