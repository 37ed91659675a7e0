package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleAuthSvcFacade handles the Google sign-in flow. The frontend either
// sends an authorization code to exchange or a ready ID token to verify.
type GoogleAuthSvcFacade interface {
	// GetLoginURL returns the URL to redirect the user to for Google login.
	GetLoginURL(state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateIDToken verifies a Google ID token and returns its payload.
	ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
