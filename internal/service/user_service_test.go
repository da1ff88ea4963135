package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/kv"
	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/daltekdz/daltekdz_bot/internal/service/mocks"
)

func TestUserService_RegisterCreatesOrUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, kv.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	repo.EXPECT().GetByTelegramID(gomock.Any(), int64(42)).Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) error {
			u.ID = 1
			return nil
		})

	user, err := svc.RegisterUser(ctx, 42, "ali", "Ali", "", "fr")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	repo.EXPECT().GetByTelegramID(gomock.Any(), int64(42)).Return(&model.User{ID: 1, TelegramID: 42}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	user, err = svc.RegisterUser(ctx, 42, "ali_dz", "Ali", "Benali", "fr")
	require.NoError(t, err)
	assert.Equal(t, "ali_dz", user.Username)
	assert.Equal(t, "Benali", user.LastName)
}

func TestUserService_Language(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := kv.NewMemoryStore()
	svc := service.NewUserService(mocks.NewMockUserRepository(ctrl), store, zap.NewNop())
	ctx := context.Background()

	lang, err := svc.Language(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, service.DefaultLanguage, lang)

	require.NoError(t, svc.SetLanguage(ctx, 42, "ar"))
	lang, err = svc.Language(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "ar", lang)

	raw, err := store.Get(ctx, "language:42")
	require.NoError(t, err)
	assert.JSONEq(t, `"ar"`, string(raw))

	assert.ErrorIs(t, svc.SetLanguage(ctx, 42, "de"), service.ErrUnsupportedLanguage)
}
