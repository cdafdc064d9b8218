package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestStaticTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	manager := NewStaticTokenManager("static-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)
}

func TestStaticTokenManager_RefreshToken(t *testing.T) {
	t.Parallel()

	manager := NewStaticTokenManager("static-token")

	err := manager.RefreshToken(context.Background())
	require.ErrorIs(t, err, ErrStaticTokenCannotRefresh)
}

func TestStaticTokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := NewStaticTokenManager("old-token")
	manager.SetToken("new-token", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestTokenSourceManager_GetToken(t *testing.T) {
	t.Parallel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "source-token"})
	manager := NewTokenSourceManager(source)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "source-token", token)
}

func TestTokenSourceManager_SetToken(t *testing.T) {
	t.Parallel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "source-token"})
	manager := NewTokenSourceManager(source)

	manager.SetToken("override-token", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "override-token", token)
}

func TestTokenSourceManager_RefreshToken(t *testing.T) {
	t.Parallel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "source-token"})
	manager := NewTokenSourceManager(source)

	require.NoError(t, manager.RefreshToken(context.Background()))
}

func TestNewClientCredentialsManager(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "granted-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	manager := NewClientCredentialsManager(context.Background(), "client-id", "client-secret", server.URL+"/token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "granted-token", token)
}
