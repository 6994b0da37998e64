package auth

import (
	"testing"
	"time"

	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: time.Hour,
		Issuer:     "docuchat-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	tenantID := uuid.New()
	userID := uuid.New()

	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID:    tenantID,
		SubjectID:   userID,
		SubjectType: SubjectUser,
		Email:       "admin@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, userID.String(), claims.SubjectID)
	assert.Equal(t, SubjectUser, claims.SubjectType)
	assert.Equal(t, "admin@acme.test", claims.Email)
	assert.NotEmpty(t, claims.ID)

	gotTenant, err := claims.GetTenantUUID()
	require.NoError(t, err)
	assert.Equal(t, tenantID, gotTenant)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:     "a-different-secret",
		Expiration: time.Hour,
		Issuer:     "docuchat-test",
	})

	token, err := other.GenerateToken(GenerateTokenInput{
		TenantID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: SubjectCustomer,
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: -time.Minute,
		Issuer:     "docuchat-test",
	})

	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: SubjectUser,
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.Value)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := newTestJWTService()
	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: SubjectUser,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.Value)
	require.NoError(t, err)
	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 50*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}
