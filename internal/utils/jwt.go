package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken создаёт JWT с типом access или refresh.
func GenerateToken(secret, userID, role string, duration time.Duration, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
		"token_type": tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и возвращает user_id, role и тип токена.
func ParseToken(secret, tokenString string) (userID, role, tokenType string, err error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", "", errors.New("неверный или просроченный токен")
	}

	userID, ok1 := claims["user_id"].(string)
	role, ok2 := claims["role"].(string)
	tokenType, ok3 := claims["token_type"].(string)
	if !ok1 || !ok2 || !ok3 {
		return "", "", "", errors.New("недопустимый payload")
	}
	return userID, role, tokenType, nil
}
