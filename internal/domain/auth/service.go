package auth

import "context"

// AuthService defines signup/login/refresh flows
type AuthService interface {
	// Signup registers a new employee account
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
