package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrInvalidStatus = errors.New("invalid store status")
	ErrInvalidPlan   = errors.New("invalid store plan")
)

// StoreService администрирование салонов-партнёров
type StoreService struct {
	repo   StoreRepository
	logger *zap.Logger
}

func NewStoreService(repo StoreRepository, logger *zap.Logger) *StoreService {
	return &StoreService{
		repo:   repo,
		logger: logger,
	}
}

func (s *StoreService) List(ctx context.Context) ([]*model.Store, error) {
	stores, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (s *StoreService) Get(ctx context.Context, id int64) (*model.Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// GetByID как Get, но отсутствие салона даёт nil, nil
func (s *StoreService) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StoreService) SetStatus(ctx context.Context, id int64, status model.StoreStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("set store status: %w", err)
	}
	if !ok {
		return ErrStoreNotFound
	}

	s.logger.Info("Store status changed",
		zap.Int64("store_id", id),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *StoreService) SetPlan(ctx context.Context, id int64, plan model.StorePlan) error {
	if !plan.IsValid() {
		return ErrInvalidPlan
	}

	ok, err := s.repo.UpdatePlan(ctx, id, plan)
	if err != nil {
		return fmt.Errorf("set store plan: %w", err)
	}
	if !ok {
		return ErrStoreNotFound
	}

	s.logger.Info("Store plan changed",
		zap.Int64("store_id", id),
		zap.String("plan", string(plan)),
	)
	return nil
}

func (s *StoreService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if !ok {
		return ErrStoreNotFound
	}

	s.logger.Info("Store deleted", zap.Int64("store_id", id))
	return nil
}
