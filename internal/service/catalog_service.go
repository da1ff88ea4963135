package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff member not found")
)

// CatalogService услуги и мастера для шагов Service и Staff
type CatalogService struct {
	repo   CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*model.Service, error) {
	services, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// GetService возвращает активную услугу
func (s *CatalogService) GetService(ctx context.Context, id int64) (*model.Service, error) {
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// ListStaffFor возвращает "любого свободного" и мастеров с нужной специализацией
func (s *CatalogService) ListStaffFor(ctx context.Context, category string) ([]*model.StaffMember, error) {
	staff, err := s.repo.ListStaffBySpecialty(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	out := make([]*model.StaffMember, 0, len(staff)+1)
	out = append(out, model.AnyStaff())
	out = append(out, staff...)
	return out, nil
}

// GetStaff возвращает мастера. AnyStaffID даёт псевдо-мастера.
func (s *CatalogService) GetStaff(ctx context.Context, id int64) (*model.StaffMember, error) {
	if id == model.AnyStaffID {
		return model.AnyStaff(), nil
	}

	member, err := s.repo.GetStaff(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}
	return member, nil
}
