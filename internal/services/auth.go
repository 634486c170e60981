package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/content"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/repository"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	profiles ProfileStore
	tokens   TokenStore
	notifier *IdentityNotifier

	// bootstrapAdminEmail — явный seed-механизм супер-админа из конфига
	// вместо захардкоженного адреса.
	bootstrapAdminEmail string
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	AuthorSlugExists(ctx context.Context, slug string) (bool, error)
	SetSuperAdmin(ctx context.Context, id string, flag bool) error
}

type TokenStore interface {
	SaveRefreshToken(ctx context.Context, userID, token string) error
	IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
}

func NewAuthService(profiles ProfileStore, tokens TokenStore, notifier *IdentityNotifier, bootstrapAdminEmail string) *AuthService {
	return &AuthService{
		profiles:            profiles,
		tokens:              tokens,
		notifier:            notifier,
		bootstrapAdminEmail: strings.ToLower(strings.TrimSpace(bootstrapAdminEmail)),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Profile, error) {
	log := logger.WithCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	userName := strings.TrimSpace(req.UserName)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: некорректный email", ErrValidation)
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		return nil, fmt.Errorf("%w: пароль должен быть не короче 6 символов", ErrValidation)
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: имя пользователя обязательно", ErrValidation)
	}

	if taken, err := s.profiles.IsEmailTaken(ctx, email); taken || err != nil {
		if err != nil {
			log.Error("Ошибка проверки email", zap.Error(err))
			return nil, err
		}
		return nil, fmt.Errorf("%w: адрес электронной почты уже зарегистрирован", ErrValidation)
	}

	authorSlug, err := s.uniqueAuthorSlug(ctx, userName)
	if err != nil {
		log.Error("Ошибка генерации author_slug", zap.Error(err))
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	p := &models.Profile{
		ID:           uuid.NewString(),
		UserName:     userName,
		AuthorSlug:   authorSlug,
		Email:        email,
		PasswordHash: hashed,
		IsSuperAdmin: s.bootstrapAdminEmail != "" && email == s.bootstrapAdminEmail,
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		log.Error("Ошибка создания профиля", zap.Error(err))
		return nil, err
	}

	log.Info("Пользователь зарегистрирован (service)",
		zap.String("user_id", p.ID),
		zap.String("author_slug", p.AuthorSlug),
		zap.Bool("super_admin", p.IsSuperAdmin),
	)
	s.notifier.Publish(IdentityEvent{Kind: "register", UserID: p.ID, Email: p.Email})
	return p, nil
}

func (s *AuthService) Login(
	ctx context.Context,
	email, password, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (string, string, *models.Profile, error) {
	log := logger.WithCtx(ctx)

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.Error(err))
		return "", "", nil, errors.New("пользователь не найден")
	}

	if !utils.CheckPasswordHash(password, p.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("user_id", p.ID))
		return "", "", nil, errors.New("неверный пароль")
	}

	// seed-админ: если учётка из конфига ещё не помечена — помечаем при входе
	if s.bootstrapAdminEmail != "" && strings.EqualFold(p.Email, s.bootstrapAdminEmail) && !p.IsSuperAdmin {
		if err := s.profiles.SetSuperAdmin(ctx, p.ID, true); err != nil {
			log.Error("Не удалось выставить флаг супер-админа", zap.Error(err))
		} else {
			p.IsSuperAdmin = true
		}
	}

	accessToken, err := utils.GenerateToken(jwtSecret, p.ID, roleOf(p), accessTTL, "access")
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", "", nil, err
	}

	refreshToken, err := utils.GenerateToken(jwtSecret, p.ID, roleOf(p), refreshTTL, "refresh")
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	if err := s.tokens.SaveRefreshToken(ctx, p.ID, refreshToken); err != nil {
		log.Error("Ошибка сохранения refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("user_id", p.ID))
	s.notifier.Publish(IdentityEvent{Kind: "login", UserID: p.ID, Email: p.Email})
	return accessToken, refreshToken, p, nil
}

// Refresh проверяет refresh-токен и выдаёт новую пару с ротацией старого.
func (s *AuthService) Refresh(
	ctx context.Context,
	refreshToken, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (string, string, error) {
	log := logger.WithCtx(ctx)

	userID, _, tokenType, err := utils.ParseToken(jwtSecret, refreshToken)
	if err != nil || tokenType != "refresh" {
		log.Warn("Refresh: токен не прошёл проверку", zap.Error(err))
		return "", "", errors.New("неверный или просроченный токен")
	}

	valid, err := s.tokens.IsRefreshTokenValid(ctx, userID, refreshToken)
	if err != nil {
		log.Error("Refresh: ошибка проверки токена в БД", zap.Error(err))
		return "", "", err
	}
	if !valid {
		log.Warn("Refresh: токен отозван или неизвестен", zap.String("user_id", userID))
		return "", "", errors.New("неверный или просроченный токен")
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		log.Warn("Refresh: профиль не найден", zap.String("user_id", userID), zap.Error(err))
		return "", "", errors.New("пользователь не найден")
	}

	newAccess, err := utils.GenerateToken(jwtSecret, p.ID, roleOf(p), accessTTL, "access")
	if err != nil {
		return "", "", err
	}
	newRefresh, err := utils.GenerateToken(jwtSecret, p.ID, roleOf(p), refreshTTL, "refresh")
	if err != nil {
		return "", "", err
	}

	_ = s.tokens.DeleteRefreshToken(ctx, userID, refreshToken)
	if err := s.tokens.SaveRefreshToken(ctx, userID, newRefresh); err != nil {
		return "", "", err
	}

	return newAccess, newRefresh, nil
}

func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	logger.WithCtx(ctx).Info("Выход пользователя (service)", zap.String("user_id", userID))
	err := s.tokens.DeleteRefreshToken(ctx, userID, refreshToken)
	if err == nil {
		s.notifier.Publish(IdentityEvent{Kind: "logout", UserID: userID})
	}
	return err
}

func (s *AuthService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Профиль не найден (service)", zap.String("user_id", id), zap.Error(err))
	}
	return p, err
}

// uniqueAuthorSlug — слаг автора из имени; коллизия решается тем же
// приёмом, что у статей: суффикс из текущего времени.
func (s *AuthService) uniqueAuthorSlug(ctx context.Context, userName string) (string, error) {
	slug := content.Slugify(userName)
	if slug == "" {
		slug = "auteur"
	}
	exists, err := s.profiles.AuthorSlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}
	return slug, nil
}

func roleOf(p *models.Profile) string {
	if p.IsSuperAdmin {
		return "admin"
	}
	return "user"
}

var _ ProfileStore = (repository.ProfileRepo)(nil)
var _ TokenStore = (repository.TokenRepo)(nil)
