package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/pkg/jwt"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer выпускает и проверяет adminToken
type TokenIssuer interface {
	GenerateToken(subject, role string) (string, time.Time, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthService вход администратора
type AuthService struct {
	username     string
	passwordHash string
	tokens       TokenIssuer
	logger       *zap.Logger
}

func NewAuthService(username, passwordHash string, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Login проверяет учётные данные и выпускает adminToken
func (s *AuthService) Login(username, pass string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := password.ComparePassword(s.passwordHash, pass)
	if !userOK || passErr != nil {
		s.logger.Warn("Admin login rejected", zap.String("username", username))
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(username, jwt.RoleAdmin)
	if err != nil {
		return "", time.Time{}, err
	}

	s.logger.Info("Admin logged in", zap.String("username", username))
	return token, expiresAt, nil
}

// Authenticate проверяет adminToken и возвращает имя администратора
func (s *AuthService) Authenticate(token string) (string, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", err
	}
	if claims.Role != jwt.RoleAdmin {
		return "", jwt.ErrInvalidToken
	}
	return claims.Subject, nil
}
