// Package auth provides token managers that supply Bearer tokens to the
// HTTP transport.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/substrate-io/crm-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// TokenManager supplies access tokens for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager provides a fixed token.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// TokenSourceManager adapts an oauth2.TokenSource. The source owns caching
// and refresh; SetToken replaces the source with a static one.
type TokenSourceManager struct {
	mu     sync.RWMutex
	source oauth2.TokenSource
}

// NewTokenSourceManager wraps an oauth2.TokenSource.
func NewTokenSourceManager(source oauth2.TokenSource) *TokenSourceManager {
	return &TokenSourceManager{source: source}
}

// NewClientCredentialsManager builds a manager that obtains tokens via the
// OAuth2 client_credentials grant, requesting the cloud-platform scope.
func NewClientCredentialsManager(ctx context.Context, clientID, clientSecret, tokenURL string) *TokenSourceManager {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{constants.CloudPlatformScope},
	}

	return NewTokenSourceManager(config.TokenSource(ctx))
}

func (m *TokenSourceManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	source := m.source
	m.mu.RUnlock()

	token, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("getting token from source: %w", err)
	}

	return token.AccessToken, nil
}

// RefreshToken is a no-op: oauth2.TokenSource refreshes internally when the
// cached token expires.
func (m *TokenSourceManager) RefreshToken(ctx context.Context) error {
	_, err := m.GetToken(ctx)

	return err
}

func (m *TokenSourceManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.source = oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		Expiry:      expiresAt,
	})
}
