package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.Generate("user-123", "alice")
	require.NoError(t, err)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "alice", claims.Username)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate("user-123", "alice")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	require.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Generate("user-123", "alice")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	_, err = ExtractTokenFromHeader(req)
	require.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = ExtractTokenFromHeader(req)
	require.Error(t, err)

	req.Header.Set("Authorization", "Bearer my-token")
	token, err := ExtractTokenFromHeader(req)
	require.NoError(t, err)
	require.Equal(t, "my-token", token)

	req.Header.Set("Authorization", "bearer my-token")
	token, err = ExtractTokenFromHeader(req)
	require.NoError(t, err)
	require.Equal(t, "my-token", token)
}
