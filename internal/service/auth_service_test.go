package service

import (
	"testing"
	"time"

	"github.com/salaleitura/leitura-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTExpiry:           time.Hour,
		TeacherEmail:        "professora@example.com",
		TeacherPasswordHash: string(hash),
	}
}

func TestAuthenticateAndValidateRoundTrip(t *testing.T) {
	s := NewAuthService(testAuthConfig(t))

	token, err := s.Authenticate("professora@example.com", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "professora@example.com", claims.Email)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := NewAuthService(testAuthConfig(t))

	_, err := s.Authenticate("professora@example.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("outra@example.com", "senha123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateDisabledWithoutHash(t *testing.T) {
	cfg := testAuthConfig(t)
	cfg.TeacherPasswordHash = ""
	s := NewAuthService(cfg)

	_, err := s.Authenticate("professora@example.com", "senha123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	s := NewAuthService(testAuthConfig(t))
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := other.generateToken("professora@example.com")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}
