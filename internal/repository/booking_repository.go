package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/repository/base"
)

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет бронирование
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			telegram_id, service_id, staff_id, booking_date, booking_time,
			customer_name, customer_email, customer_phone, notes, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		booking.TelegramID,
		booking.ServiceID,
		booking.StaffID,
		booking.Date,
		booking.Time,
		booking.Customer.Name,
		booking.Customer.Email,
		booking.Customer.Phone,
		booking.Customer.Notes,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByTelegramID получает бронирования клиента вместе с услугой и мастером
func (r *BookingRepository) GetByTelegramID(ctx context.Context, telegramID int64, limit int) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.telegram_id, b.service_id, b.staff_id, b.booking_date, b.booking_time,
		       b.customer_name, b.customer_email, b.customer_phone, b.notes, b.status, b.created_at,
		       s.name, s.category, s.duration, s.price,
		       st.name
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		LEFT JOIN staff st ON st.id = b.staff_id
		WHERE b.telegram_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2
	`

	rows, err := r.Query(ctx, query, telegramID, limit)
	if err != nil {
		return nil, fmt.Errorf("get bookings by telegram id: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var (
			booking   model.Booking
			service   model.Service
			staffName *string
		)
		err := rows.Scan(
			&booking.ID,
			&booking.TelegramID,
			&booking.ServiceID,
			&booking.StaffID,
			&booking.Date,
			&booking.Time,
			&booking.Customer.Name,
			&booking.Customer.Email,
			&booking.Customer.Phone,
			&booking.Customer.Notes,
			&booking.Status,
			&booking.CreatedAt,
			&service.Name,
			&service.Category,
			&service.Duration,
			&service.Price,
			&staffName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		service.ID = booking.ServiceID
		booking.Service = &service
		if booking.StaffID != nil && staffName != nil {
			booking.Staff = &model.StaffMember{ID: *booking.StaffID, Name: *staffName}
		} else {
			booking.Staff = model.AnyStaff()
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
