package golearapi

import (
	"context"
	"net/http"
	"strings"
)

// Health probes GET /health. It bypasses the rate limiter and breaker so a
// cold-starting backend can be polled until it answers.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	err := c.do(ctx, call{op: "Health", method: http.MethodGet, path: "/health", direct: true}, &out)
	return out, err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, call{
		op:     "Login",
		method: http.MethodPost,
		path:   "/auth/login/api",
		json: map[string]string{
			"email":    strings.TrimSpace(email),
			"password": password,
		},
	}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return LoginResult{}, &Error{Op: "Login", Status: http.StatusOK, Message: "response carried no token"}
	}
	return out, nil
}

// Register creates an account. The backend may or may not sign the user in;
// Token is empty when it does not.
func (c *Client) Register(ctx context.Context, in RegisterInput) (LoginResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	var out LoginResult
	err := c.do(ctx, call{op: "Register", method: http.MethodPost, path: "/auth/register/api", json: in}, &out)
	return out, err
}

// RequestPasswordReset asks the backend to e-mail a recovery token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var out envelope
	err := c.do(ctx, call{
		op:     "RequestPasswordReset",
		method: http.MethodPost,
		path:   "/resgate-senha/api",
		json:   map[string]string{"email": strings.TrimSpace(email)},
	}, &out)
	return out.Message, err
}

// ChangePassword sets a new password using the e-mailed recovery token.
func (c *Client) ChangePassword(ctx context.Context, email, novaSenha, token string) (string, error) {
	var out envelope
	err := c.do(ctx, call{
		op:     "ChangePassword",
		method: http.MethodPost,
		path:   "/alterar-senha/api",
		json: map[string]string{
			"email":     strings.TrimSpace(email),
			"novaSenha": novaSenha,
			"token":     strings.TrimSpace(token),
		},
	}, &out)
	return out.Message, err
}
