package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/repository/base"
)

// CatalogRepository читает услуги и мастеров салона
type CatalogRepository struct {
	*base.Repository
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{Repository: base.NewRepository(pool)}
}

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Duration,
		&s.Price,
		&s.Description,
		&s.Image,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActiveServices возвращает активные услуги
func (r *CatalogRepository) ListActiveServices(ctx context.Context) ([]*model.Service, error) {
	query := `
		SELECT id, name, category, duration, price, description, image, is_active, created_at
		FROM services
		WHERE is_active = true
		ORDER BY category, id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}

	return services, nil
}

// GetService получает услугу по ID
func (r *CatalogRepository) GetService(ctx context.Context, id int64) (*model.Service, error) {
	query := `
		SELECT id, name, category, duration, price, description, image, is_active, created_at
		FROM services
		WHERE id = $1
	`

	s, err := scanService(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}

	return s, nil
}

func scanStaff(row pgx.Row) (*model.StaffMember, error) {
	var m model.StaffMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Specialties,
		&m.Image,
		&m.Rating,
		&m.Experience,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListStaffBySpecialty возвращает мастеров, работающих с категорией услуг
func (r *CatalogRepository) ListStaffBySpecialty(ctx context.Context, category string) ([]*model.StaffMember, error) {
	query := `
		SELECT id, name, specialties, image, rating, experience
		FROM staff
		WHERE $1 = ANY(specialties)
		ORDER BY rating DESC, id
	`

	rows, err := r.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list staff by specialty: %w", err)
	}
	defer rows.Close()

	var staff []*model.StaffMember
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staff = append(staff, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff: %w", err)
	}

	return staff, nil
}

// GetStaff получает мастера по ID
func (r *CatalogRepository) GetStaff(ctx context.Context, id int64) (*model.StaffMember, error) {
	query := `
		SELECT id, name, specialties, image, rating, experience
		FROM staff
		WHERE id = $1
	`

	m, err := scanStaff(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by id: %w", err)
	}

	return m, nil
}
