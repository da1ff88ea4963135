package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/repository/base"
)

type NotificationRepository struct {
	*base.Repository
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет уведомление и заполняет ID и CreatedAt
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	payload := n.Payload
	if payload == nil {
		payload = map[string]string{}
	}

	query := `
		INSERT INTO notifications (kind, title, message, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id, read, created_at
	`

	err := r.QueryRow(ctx, query, n.Kind, n.Title, n.Message, payload).
		Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

// List возвращает последние уведомления, новые первыми
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]*model.Notification, error) {
	query := `
		SELECT id, kind, title, message, payload, read, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		err := rows.Scan(
			&n.ID,
			&n.Kind,
			&n.Title,
			&n.Message,
			&n.Payload,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным. Возвращает false если его нет.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (bool, error) {
	affected, err := r.ExecAffected(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return affected > 0, nil
}
