package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/kv"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// DefaultLanguage язык интерфейса по умолчанию
const DefaultLanguage = "fr"

// SupportedLanguages языки, которые можно сохранить в профиле
var SupportedLanguages = []string{"fr", "ar", "en"}

var ErrUnsupportedLanguage = errors.New("unsupported language")

type UserService struct {
	userRepo UserRepository
	prefs    kv.Store
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, prefs kv.Store, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		prefs:    prefs,
		logger:   logger,
	}
}

// RegisterUser регистрирует или обновляет пользователя
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.User, error) {
	existingUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	if existingUser != nil {
		existingUser.Username = username
		existingUser.FirstName = firstName
		existingUser.LastName = lastName
		existingUser.LanguageCode = languageCode

		if err := s.userRepo.Update(ctx, existingUser); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}

		s.logger.Info("User updated",
			zap.Int64("telegram_id", telegramID),
			zap.String("username", username),
		)

		return existingUser, nil
	}

	user := &model.User{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LanguageCode: languageCode,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

func languageKey(telegramID int64) string {
	return kv.KeyLanguagePrefix + strconv.FormatInt(telegramID, 10)
}

// Language возвращает сохранённый язык или язык по умолчанию
func (s *UserService) Language(ctx context.Context, telegramID int64) (string, error) {
	var lang string
	err := kv.GetJSON(ctx, s.prefs, languageKey(telegramID), &lang)
	if errors.Is(err, kv.ErrNotFound) {
		return DefaultLanguage, nil
	}
	if err != nil {
		return "", fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// SetLanguage сохраняет язык интерфейса пользователя
func (s *UserService) SetLanguage(ctx context.Context, telegramID int64, lang string) error {
	if !isSupportedLanguage(lang) {
		return ErrUnsupportedLanguage
	}

	if err := kv.SetJSON(ctx, s.prefs, languageKey(telegramID), lang); err != nil {
		return fmt.Errorf("set language: %w", err)
	}

	s.logger.Info("Language preference saved",
		zap.Int64("telegram_id", telegramID),
		zap.String("language", lang),
	)
	return nil
}

func isSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
