package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/reqctx"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// JWTAuth пускает дальше только с валидным access-токеном в Authorization.
func JWTAuth(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")

			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				http.Error(w, "Отсутствует access token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			userID, role, tokenType, err := utils.ParseToken(jwtSecret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен",
					zap.Error(err))
				http.Error(w, "Неверный или просроченный токен", http.StatusUnauthorized)
				return
			}

			// refresh-токен не даёт доступа к API
			if tokenType != "access" {
				logger.WithCtx(r.Context()).Warn("JWTAuth: токен не является access-токеном",
					zap.String("token_type", tokenType))
				http.Error(w, "Неверный или просроченный токен", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, userID)
			ctx = context.WithValue(ctx, ContextRole, role)
			ctx = reqctx.WithUserID(ctx, userID)

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден",
				zap.String("user_id", userID), zap.String("role", role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromCtx достаёт идентификатор пользователя, положенный JWTAuth.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextUserID).(string)
	return v, ok
}
