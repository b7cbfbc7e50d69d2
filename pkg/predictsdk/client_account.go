package predictsdk

import (
	"context"
	"net/http"
)

// Register creates a teacher or student account.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users", req, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/sessions", LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var sess SessionResponse
	if err := decodeJSON(resp, &sess, http.StatusCreated); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     sess.Token,
		expiresAt: sess.ExpiresAt,
		userID:    sess.UserID,
		role:      sess.Role,
	}, nil
}

// RequestPasswordReset asks for a reset token to be delivered. The server
// answers 202 whether or not the user exists.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, username string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/password-reset", PasswordResetRequest{
		Username: username,
	}, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusAccepted)
}

// ConfirmPasswordReset redeems token and sets a new password.
func (c *SDKClient) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/password-reset/confirm", PasswordResetConfirmRequest{
		Token:       token,
		NewPassword: newPassword,
	}, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// Bootstrap creates the first admin account using the server's bootstrap
// token.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap", req, map[string]string{
		"X-Bootstrap-Token": token,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
