package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils"
)

// Мок-репозиторий профилей (заглушка)
type mockProfileStore struct {
	profiles map[string]*models.Profile // по email
	last     *models.Profile
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[string]*models.Profile)}
}

func (m *mockProfileStore) Create(_ context.Context, p *models.Profile) error {
	m.profiles[p.Email] = p
	m.last = p
	return nil
}

func (m *mockProfileStore) GetByID(_ context.Context, id string) (*models.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockProfileStore) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	p, ok := m.profiles[strings.ToLower(email)]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (m *mockProfileStore) IsEmailTaken(_ context.Context, email string) (bool, error) {
	_, ok := m.profiles[email]
	return ok, nil
}

func (m *mockProfileStore) AuthorSlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range m.profiles {
		if p.AuthorSlug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProfileStore) SetSuperAdmin(_ context.Context, id string, flag bool) error {
	for _, p := range m.profiles {
		if p.ID == id {
			p.IsSuperAdmin = flag
			return nil
		}
	}
	return errors.New("not found")
}

type mockTokenStore struct {
	saved map[string]string // userID -> token
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{saved: make(map[string]string)}
}

func (m *mockTokenStore) SaveRefreshToken(_ context.Context, userID, token string) error {
	m.saved[userID] = token
	return nil
}

func (m *mockTokenStore) IsRefreshTokenValid(_ context.Context, userID, token string) (bool, error) {
	return m.saved[userID] == token, nil
}

func (m *mockTokenStore) DeleteRefreshToken(_ context.Context, userID, token string) error {
	if m.saved[userID] == token {
		delete(m.saved, userID)
	}
	return nil
}

func TestRegister(t *testing.T) {
	profiles := newMockProfileStore()
	service := NewAuthService(profiles, newMockTokenStore(), NewIdentityNotifier(), "")

	p, err := service.Register(context.Background(), models.RegisterRequest{
		Email:    "Test@Example.com",
		Password: "secret123",
		UserName: "Corinne Diarra",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if profiles.last == nil || profiles.last.PasswordHash == "" {
		t.Fatal("пароль не захеширован или профиль не сохранён")
	}
	if profiles.last.PasswordHash == "secret123" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if p.Email != "test@example.com" {
		t.Fatalf("email не нормализован: %q", p.Email)
	}
	if p.AuthorSlug != "corinne-diarra" {
		t.Fatalf("неожиданный author_slug: %q", p.AuthorSlug)
	}
	if p.IsSuperAdmin {
		t.Fatal("флаг супер-админа без bootstrap-email")
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	service := NewAuthService(newMockProfileStore(), newMockTokenStore(), NewIdentityNotifier(), "")

	_, err := service.Register(context.Background(), models.RegisterRequest{
		Email:    "test@example.com",
		Password: "123",
		UserName: "user",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	profiles := newMockProfileStore()
	service := NewAuthService(profiles, newMockTokenStore(), NewIdentityNotifier(), "")

	req := models.RegisterRequest{Email: "dup@example.com", Password: "secret123", UserName: "user"}
	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("первая регистрация: %v", err)
	}
	if _, err := service.Register(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Fatalf("ожидалась ошибка валидации на повторный email, получено: %v", err)
	}
}

func TestRegister_BootstrapAdmin(t *testing.T) {
	profiles := newMockProfileStore()
	service := NewAuthService(profiles, newMockTokenStore(), NewIdentityNotifier(), "Admin@Example.com")

	p, err := service.Register(context.Background(), models.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret123",
		UserName: "admin",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if !p.IsSuperAdmin {
		t.Fatal("bootstrap-учётка не помечена супер-админом")
	}
}

func TestLogin_Success(t *testing.T) {
	profiles := newMockProfileStore()
	tokens := newMockTokenStore()
	service := NewAuthService(profiles, tokens, NewIdentityNotifier(), "")

	hashed, _ := utils.HashPassword("secret123")
	profiles.profiles["user@example.com"] = &models.Profile{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: hashed,
	}

	access, refresh, p, err := service.Login(context.Background(), "user@example.com", "secret123", "mysecret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("токены не сгенерированы")
	}
	if p.ID != "u1" {
		t.Fatalf("неожиданный профиль: %+v", p)
	}
	if tokens.saved["u1"] != refresh {
		t.Fatal("refresh-токен не сохранён")
	}
}

func TestLogin_Fail(t *testing.T) {
	service := NewAuthService(newMockProfileStore(), newMockTokenStore(), NewIdentityNotifier(), "")

	_, _, _, err := service.Login(context.Background(), "unknown@example.com", "pass", "secret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при логине несуществующего пользователя")
	}
}

func TestLogin_BootstrapPromotion(t *testing.T) {
	profiles := newMockProfileStore()
	service := NewAuthService(profiles, newMockTokenStore(), NewIdentityNotifier(), "admin@example.com")

	hashed, _ := utils.HashPassword("secret123")
	profiles.profiles["admin@example.com"] = &models.Profile{
		ID:           "a1",
		Email:        "admin@example.com",
		PasswordHash: hashed,
	}

	_, _, p, err := service.Login(context.Background(), "admin@example.com", "secret123", "mysecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if !p.IsSuperAdmin {
		t.Fatal("bootstrap-учётка не повышена при входе")
	}
}

func TestRefresh_Rotation(t *testing.T) {
	profiles := newMockProfileStore()
	tokens := newMockTokenStore()
	service := NewAuthService(profiles, tokens, NewIdentityNotifier(), "")

	hashed, _ := utils.HashPassword("secret123")
	profiles.profiles["user@example.com"] = &models.Profile{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: hashed,
	}

	_, refresh, _, err := service.Login(context.Background(), "user@example.com", "secret123", "mysecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	_, newRefresh, err := service.Refresh(context.Background(), refresh, "mysecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка обновления токенов: %v", err)
	}
	if tokens.saved["u1"] != newRefresh {
		t.Fatal("новый refresh-токен не сохранён")
	}

	// старый токен отозван ротацией
	if _, _, err := service.Refresh(context.Background(), refresh, "mysecret", time.Minute, time.Hour); err == nil {
		t.Fatal("ожидался отказ по отозванному refresh-токену")
	}
}

func TestRefresh_WrongTokenType(t *testing.T) {
	service := NewAuthService(newMockProfileStore(), newMockTokenStore(), NewIdentityNotifier(), "")

	access, _ := utils.GenerateToken("mysecret", "u1", "user", time.Minute, "access")
	if _, _, err := service.Refresh(context.Background(), access, "mysecret", time.Minute, time.Hour); err == nil {
		t.Fatal("access-токен не должен проходить как refresh")
	}
}
