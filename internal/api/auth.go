package api

import (
	"context"
	"net/http"
)

// AuthRequest is the sign in / sign up payload. The endpoint creates the
// account on first use of an email, signs in otherwise.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token granted by the server.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

// SignIn authenticates against /auth/signin-up. It is the only endpoint
// called without a bearer credential.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, "sign in", http.MethodPost, "/auth/signin-up",
		AuthRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
