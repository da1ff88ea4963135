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

func TestCatalogService_ListStaffForPrependsAny(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	svc := service.NewCatalogService(repo, zap.NewNop())

	repo.EXPECT().ListStaffBySpecialty(gomock.Any(), "coiffure").
		Return([]*model.StaffMember{{ID: 1, Name: "Karim Benali"}}, nil)

	staff, err := svc.ListStaffFor(context.Background(), "coiffure")
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.True(t, staff[0].IsAny())
	assert.Equal(t, model.AnyStaffName, staff[0].Name)
	assert.Equal(t, "Karim Benali", staff[1].Name)
}

func TestCatalogService_GetStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	svc := service.NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	anyStaff, err := svc.GetStaff(ctx, model.AnyStaffID)
	require.NoError(t, err)
	assert.True(t, anyStaff.IsAny())

	repo.EXPECT().GetStaff(gomock.Any(), int64(9)).Return(nil, nil)
	_, err = svc.GetStaff(ctx, 9)
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}

func TestCatalogService_GetServiceHidesInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	svc := service.NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	repo.EXPECT().GetService(gomock.Any(), int64(1)).
		Return(&model.Service{ID: 1, Name: "Coupe masculine classique", IsActive: true}, nil)
	got, err := svc.GetService(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Coupe masculine classique", got.Name)

	repo.EXPECT().GetService(gomock.Any(), int64(2)).Return(&model.Service{ID: 2}, nil)
	_, err = svc.GetService(ctx, 2)
	assert.ErrorIs(t, err, service.ErrServiceNotFound)

	repo.EXPECT().GetService(gomock.Any(), int64(3)).Return(nil, nil)
	_, err = svc.GetService(ctx, 3)
	assert.ErrorIs(t, err, service.ErrServiceNotFound)
}
