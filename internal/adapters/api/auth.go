package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
)

type passwordAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authTokenResponse struct {
	Token string `json:"token"`
}

// AuthenticateWithPassword exchanges email and password for a token
func (c *Client) AuthenticateWithPassword(ctx context.Context, serverAddress, email, password string) (string, error) {
	const op = "authenticate"

	req, err := c.newJSONRequest(ctx, http.MethodPost, endpoint(serverAddress, authTokenPath), "",
		passwordAuthRequest{Email: email, Password: password})
	if err != nil {
		return "", errclass.FromError(op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(op, resp)
	}

	var payload authTokenResponse
	if err := decodeJSON(op, resp, &payload); err != nil {
		return "", err
	}
	token := strings.TrimSpace(payload.Token)
	if token == "" {
		return "", errclass.New(errclass.KindValidation, op, "response did not contain a token", nil)
	}

	logging.Logger.Info("Authenticated with password", "server", serverAddress, "email", email)
	return token, nil
}

// AuthenticateWithToken checks a pre-issued token against the server
func (c *Client) AuthenticateWithToken(ctx context.Context, serverAddress, token string) (string, error) {
	const op = "authenticate"

	req, err := c.newRequest(ctx, http.MethodGet, endpoint(serverAddress, authTokenPath), token, nil)
	if err != nil {
		return "", errclass.FromError(op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(op, resp)
	}

	// Some servers echo the token back, others return an empty body
	var payload authTokenResponse
	if err := decodeJSON(op, resp, &payload); err == nil && strings.TrimSpace(payload.Token) != "" {
		token = strings.TrimSpace(payload.Token)
	}

	logging.Logger.Info("Authenticated with token", "server", serverAddress)
	return token, nil
}
