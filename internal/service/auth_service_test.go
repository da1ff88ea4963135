package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/jwt"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/password"
	"github.com/daltekdz/daltekdz_bot/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := password.HashPassword("s3cret")
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	tokens := jwt.NewService("secret", time.Hour, clk)
	svc := service.NewAuthService("admin", hash, tokens, zap.NewNop())

	token, expiresAt, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expiresAt)

	subject, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	_, _, err = svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = svc.Login("root", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
