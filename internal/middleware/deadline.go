package middleware

import (
	"context"
	"net/http"
	"time"
)

// Deadline ставит единый дедлайн на обработку запроса: зависший бэкенд не
// должен держать клиента в вечной "загрузке". Сам запрос к БД при этом не
// отстреливается мгновенно — просто контекст истекает и результат
// выбрасывается.
func Deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
