package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/repository/base"
)

type StoreRepository struct {
	*base.Repository
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{Repository: base.NewRepository(pool)}
}

const storeColumns = `
	s.id, s.name, s.owner_name, s.owner_email, s.owner_phone,
	s.wilaya_code, w.name, s.plan, s.status, s.rating,
	s.bookings_count, s.services_count, s.created_at
`

func scanStore(row pgx.Row) (*model.Store, error) {
	var store model.Store
	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.OwnerName,
		&store.OwnerEmail,
		&store.OwnerPhone,
		&store.WilayaCode,
		&store.WilayaName,
		&store.Plan,
		&store.Status,
		&store.Rating,
		&store.BookingsCount,
		&store.ServicesCount,
		&store.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// List возвращает все салоны, новые первыми
func (r *StoreRepository) List(ctx context.Context) ([]*model.Store, error) {
	query := `SELECT ` + storeColumns + `
		FROM stores s
		JOIN wilayas w ON w.code = s.wilaya_code
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*model.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}

	return stores, nil
}

// GetByID получает салон по ID
func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	query := `SELECT ` + storeColumns + `
		FROM stores s
		JOIN wilayas w ON w.code = s.wilaya_code
		WHERE s.id = $1
	`

	store, err := scanStore(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}

	return store, nil
}

// UpdateStatus меняет статус салона. Возвращает false если салона нет.
func (r *StoreRepository) UpdateStatus(ctx context.Context, id int64, status model.StoreStatus) (bool, error) {
	affected, err := r.ExecAffected(ctx, `UPDATE stores SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update store status: %w", err)
	}
	return affected > 0, nil
}

// UpdatePlan меняет тариф салона. Возвращает false если салона нет.
func (r *StoreRepository) UpdatePlan(ctx context.Context, id int64, plan model.StorePlan) (bool, error) {
	affected, err := r.ExecAffected(ctx, `UPDATE stores SET plan = $1 WHERE id = $2`, plan, id)
	if err != nil {
		return false, fmt.Errorf("update store plan: %w", err)
	}
	return affected > 0, nil
}

// Delete удаляет салон. Возвращает false если салона нет.
func (r *StoreRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	return affected > 0, nil
}
