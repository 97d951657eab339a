package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/auth/adapters/services"
	domainservices "notekeep/internal/auth/domain/services"
	"notekeep/pkg/logger"
)

//nolint:gosec
const (
	testSecretKey = "test-secret-key-12345"

	msgErrorCreatingTestLogger   = "should create test logger without errors"
	msgNoErrorGeneratingToken    = "should generate token without errors"
	msgTokenNotEmpty             = "token should not be empty"
	msgNoErrorValidatingToken    = "should validate token without errors"
	msgCorrectUserIDReturned     = "should return correct user ID"
	msgExpiredTokenReturnsError  = "expired token should return error"
	msgInvalidTokenReturnedError = "invalid token should return error"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	return logger.NewContext(context.Background(), testLogger)
}

func TestBcryptHashAndVerify(t *testing.T) {
	ctx := testContext(t)
	service := services.NewBcrypt(4)

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.Hash(ctx, "secret-password")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret-password", hash)

		valid, err := service.Verify(ctx, "secret-password", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("verify rejects wrong password", func(t *testing.T) {
		hash, err := service.Hash(ctx, "secret-password")
		require.NoError(t, err)

		valid, err := service.Verify(ctx, "other-password", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("hashes are salted per call", func(t *testing.T) {
		first, err := service.Hash(ctx, "secret-password")
		require.NoError(t, err)
		second, err := service.Hash(ctx, "secret-password")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("error on too short password", func(t *testing.T) {
		_, err := service.Hash(ctx, "abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("error on empty password", func(t *testing.T) {
		_, err := service.Hash(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})
}

func TestGenerateToken(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful token generation", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, time.Hour)

		token, expiresAt, err := service.GenerateToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err, msgNoErrorGeneratingToken)
		assert.NotEmpty(t, token, msgTokenNotEmpty)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	})

	t.Run("error on empty secret key", func(t *testing.T) {
		service := services.NewJWT("", time.Hour)

		_, _, err := service.GenerateToken(ctx, "user-id-123", "testuser")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrGeneratingJWTToken)
	})
}

func TestValidateToken(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful validation of a valid token", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, time.Hour)

		token, _, err := service.GenerateToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		userID, err := service.ValidateToken(ctx, token)
		require.NoError(t, err, msgNoErrorValidatingToken)
		assert.Equal(t, "user-id-123", userID, msgCorrectUserIDReturned)
	})

	t.Run("error on expired token", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, -time.Minute)

		token, _, err := service.GenerateToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service.ValidateToken(ctx, token)
		require.Error(t, err, msgExpiredTokenReturnsError)
		assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
	})

	t.Run("token near the expiry boundary", func(t *testing.T) {
		// Токен часового срока жизни, выданный 59 минут назад, еще действует;
		// выданный 61 минуту назад - уже нет.
		service := services.NewJWT(testSecretKey, time.Hour)

		stillValid := signedToken(t, "user-id-123", time.Now().Add(-59*time.Minute), time.Hour)
		userID, err := service.ValidateToken(ctx, stillValid)
		require.NoError(t, err, msgNoErrorValidatingToken)
		assert.Equal(t, "user-id-123", userID)

		expired := signedToken(t, "user-id-123", time.Now().Add(-61*time.Minute), time.Hour)
		_, err = service.ValidateToken(ctx, expired)
		require.Error(t, err, msgExpiredTokenReturnsError)
		assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
	})

	t.Run("error on invalid token format", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, time.Hour)

		_, err := service.ValidateToken(ctx, "invalid.token.format")
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on token with wrong signature", func(t *testing.T) {
		service1 := services.NewJWT(testSecretKey, time.Hour)
		service2 := services.NewJWT("different-secret-key-67890", time.Hour)

		token, _, err := service1.GenerateToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service2.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on token without user id claim", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, time.Hour)

		token := signedToken(t, "", time.Now(), time.Hour)

		_, err := service.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})
}

// signedToken выпускает токен с заданным временем выдачи, имитируя сдвиг часов.
func signedToken(t *testing.T, userID string, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	claims := services.Claims{
		UserID:   userID,
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			Subject:   userID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecretKey))
	require.NoError(t, err, msgNoErrorGeneratingToken)
	return token
}
