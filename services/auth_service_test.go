package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-krushivishwa/models"
	"go-krushivishwa/store"
)

func newTestAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()
	svc, err := NewAuthService(AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		HashCost:  bcrypt.MinCost,
	}, st, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     []string
	}{
		{"valid username", "demo", "demo123", nil},
		{"valid email", "farmer@krushi.com", "password123", nil},
		{"valid phone", "9876543210", "mobile123", nil},
		{"missing both", "  ", "", []string{"Username/Email is required", "Password is required"}},
		{"short password", "demo", "abc", []string{"Password must be at least 6 characters"}},
		{"bad email", "farmer@krushi", "password123", []string{"Please enter a valid email address"}},
		{"short phone", "98765", "mobile123", []string{"Phone number must be 10 digits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLoginForm(tt.username, tt.password))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Demo User", DisplayName("Demo User"))
	assert.Equal(t, "Demo", DisplayName("demo"))
	assert.Equal(t, "Farmer", DisplayName("farmer@krushi.com"))
	assert.Equal(t, "User", DisplayName("9876543210"))
	assert.Equal(t, "admin", DisplayName("admin"))
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := newTestAuthService(t, st)

	result, err := svc.Login(ctx, "farmer@krushi.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "farmer@krushi.com", result.Username)
	assert.Equal(t, "Farmer", result.DisplayName)
	assert.False(t, result.IsDemo)
	require.NotEmpty(t, result.Token)

	session, err := svc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "farmer@krushi.com", session.Username)

	require.NoError(t, svc.Logout(ctx, session.ID))
	_, err = svc.VerifyToken(ctx, result.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_LoginRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, store.NewMemoryStore())

	_, err := svc.Login(ctx, "demo", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "demo", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password is required", verr.Error())
}

func TestAuthService_DemoLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, store.NewMemoryStore())

	result, err := svc.DemoLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DemoUsername, result.Username)
	assert.True(t, result.IsDemo)

	session, err := svc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
	assert.True(t, session.IsDemo)
}

func TestAuthService_VerifyRejectsForeignToken(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := newTestAuthService(t, st)

	other, err := NewAuthService(AuthConfig{JWTSecret: "other", TokenTTL: time.Hour, HashCost: bcrypt.MinCost}, st, zap.NewNop())
	require.NoError(t, err)
	result, err := other.Login(ctx, "demo", "demo123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Register(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryStore())

	assert.NoError(t, svc.Register("new@krushi.com", "secret1"))

	err := svc.Register("new@", "123")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at least 6 characters. Please enter a valid email address", verr.Error())
}

func TestNewAuthService_Config(t *testing.T) {
	_, err := NewAuthService(AuthConfig{TokenTTL: time.Hour}, store.NewMemoryStore(), zap.NewNop())
	assert.Error(t, err)

	_, err = NewAuthService(AuthConfig{JWTSecret: "s"}, store.NewMemoryStore(), zap.NewNop())
	assert.Error(t, err)
}

func TestNewAuthService_HashesCredentials(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryStore())

	require.Len(t, svc.credentials, len(demoCredentials))
	for _, c := range demoCredentials {
		cred, ok := svc.credentials[c.username]
		require.True(t, ok, c.username)
		assert.Equal(t, c.username, cred.Username)
		assert.NotEqual(t, c.password, string(cred.PasswordHash))
		assert.NoError(t, bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(c.password)))
	}
}
