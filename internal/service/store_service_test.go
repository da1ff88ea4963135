package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/daltekdz/daltekdz_bot/internal/service/mocks"
)

func TestStoreService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRepository(ctrl)
	svc := service.NewStoreService(repo, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetStatus(ctx, 1, "archived"), service.ErrInvalidStatus)

	repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), model.StoreStatusSuspended).Return(true, nil)
	assert.NoError(t, svc.SetStatus(ctx, 1, model.StoreStatusSuspended))

	repo.EXPECT().UpdateStatus(gomock.Any(), int64(99), model.StoreStatusActive).Return(false, nil)
	assert.ErrorIs(t, svc.SetStatus(ctx, 99, model.StoreStatusActive), service.ErrStoreNotFound)
}

func TestStoreService_SetPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRepository(ctrl)
	svc := service.NewStoreService(repo, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetPlan(ctx, 1, "bronze"), service.ErrInvalidPlan)

	repo.EXPECT().UpdatePlan(gomock.Any(), int64(1), model.StorePlanGold).Return(true, nil)
	assert.NoError(t, svc.SetPlan(ctx, 1, model.StorePlanGold))
}

func TestStoreService_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRepository(ctrl)
	svc := service.NewStoreService(repo, zap.NewNop())
	ctx := context.Background()

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil).Times(2)
	_, err := svc.Get(ctx, 5)
	assert.ErrorIs(t, err, service.ErrStoreNotFound)
	store, err := svc.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, store)

	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 5), service.ErrStoreNotFound)

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
	assert.NoError(t, svc.Delete(ctx, 1))
}
