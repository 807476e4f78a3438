// Package auth provides credential providers for the Invobox API.
package auth

import (
	"context"
	"encoding/base64"
)

// Provider supplies the Authorization header value for outgoing requests.
type Provider interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// BasicProvider authenticates with HTTP Basic using the account owner's email
// and API key.
type BasicProvider struct {
	email  string
	apiKey string
}

// NewBasicProvider creates a basic-auth provider.
func NewBasicProvider(email, apiKey string) *BasicProvider {
	return &BasicProvider{email: email, apiKey: apiKey}
}

// AuthorizationHeader implements Provider.
func (p *BasicProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	credentials := base64.StdEncoding.EncodeToString([]byte(p.email + ":" + p.apiKey))

	return "Basic " + credentials, nil
}

// TokenProvider authenticates with a static Bearer token.
type TokenProvider struct {
	token string
}

// NewTokenProvider creates a bearer-token provider.
func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{token: token}
}

// AuthorizationHeader implements Provider.
func (p *TokenProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	return "Bearer " + p.token, nil
}
