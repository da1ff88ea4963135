// Package notification хранит уведомления для админки и рассылает их в чаты
package notification

import (
	"context"
	"errors"
	"fmt"
	"html"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// DefaultListLimit сколько уведомлений отдаётся без явного лимита
const DefaultListLimit = 50

// Repository хранилище уведомлений
type Repository interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
}

// ErrNotFound уведомление не найдено
var ErrNotFound = errors.New("notification not found")

// Service сохраняет уведомления и дублирует их в чат администратора
type Service struct {
	repo        Repository
	messenger   Messenger
	adminChatID int64
	logger      *zap.Logger
}

// NewService создаёт сервис уведомлений. adminChatID == 0 отключает отправку в чат.
func NewService(repo Repository, messenger Messenger, adminChatID int64, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		messenger:   messenger,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// Notify сохраняет уведомление и отправляет его администратору.
// Ошибки только логируются.
func (s *Service) Notify(ctx context.Context, n *model.Notification) {
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("Failed to store notification",
			zap.String("kind", string(n.Kind)),
			zap.Error(err),
		)
	}

	if s.adminChatID == 0 || s.messenger == nil {
		return
	}

	text := fmt.Sprintf("🔔 <b>%s</b>\n%s", html.EscapeString(n.Title), html.EscapeString(n.Message))
	if err := s.messenger.SendText(ctx, s.adminChatID, text, nil); err != nil {
		s.logger.Warn("Failed to push notification to admin chat",
			zap.String("kind", string(n.Kind)),
			zap.Int64("chat_id", s.adminChatID),
			zap.Error(err),
		)
	}
}

// List возвращает последние уведомления
func (s *Service) List(ctx context.Context, limit int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	list, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// MarkRead отмечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
