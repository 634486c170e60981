package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("mysecret", "u1", "admin", time.Minute, "access")
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	userID, role, tokenType, err := ParseToken("mysecret", token)
	if err != nil {
		t.Fatalf("ошибка разбора токена: %v", err)
	}
	if userID != "u1" || role != "admin" || tokenType != "access" {
		t.Fatalf("claims искажены: %s %s %s", userID, role, tokenType)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("mysecret", "u1", "user", time.Minute, "access")

	if _, _, _, err := ParseToken("othersecret", token); err == nil {
		t.Fatal("токен с чужой подписью не должен проходить")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _ := GenerateToken("mysecret", "u1", "user", -time.Minute, "access")

	if _, _, _, err := ParseToken("mysecret", token); err == nil {
		t.Fatal("просроченный токен не должен проходить")
	}
}
