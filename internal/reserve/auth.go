package reserve

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account signup.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}

// Login authenticates with email and password and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("reserve: login requires email and password")
	}
	data, _, err := c.invoke(ctx, "auth.login", http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeJSON[AuthResponse]("auth.login", data)
}

// Register creates a new account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("reserve: register requires email and password")
	}
	data, _, err := c.invoke(ctx, "auth.register", http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeJSON[AuthResponse]("auth.register", data)
}

// expiryLeeway is how close to expiry a cached token is treated as stale.
const expiryLeeway = 30 * time.Second

// CredentialsSource is a TokenSource that logs in with email and password,
// caches the issued JWT, and re-authenticates shortly before it expires.
// The token's claims are read without signature verification; the backend
// remains the authority on validity.
type CredentialsSource struct {
	client   *Client
	email    string
	password string

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewCredentialsSource returns a TokenSource backed by a login call.
// The returned source must not be installed on the same client's Config;
// use a separate unauthenticated client for login.
func NewCredentialsSource(client *Client, email, password string) *CredentialsSource {
	return &CredentialsSource{client: client, email: email, password: password}
}

// Token returns a cached token, logging in again if it is missing or stale.
func (s *CredentialsSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && (s.expiry.IsZero() || time.Until(s.expiry) > expiryLeeway) {
		return s.token, nil
	}
	resp, err := s.client.Login(ctx, s.email, s.password)
	if err != nil {
		return "", fmt.Errorf("reserve: refresh token: %w", err)
	}
	s.token = resp.Token
	s.expiry = tokenExpiry(resp.Token)
	return s.token, nil
}

// tokenExpiry reads the exp claim without verifying the signature.
// A token that cannot be parsed is treated as never expiring and will
// only be replaced after the backend rejects it.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
