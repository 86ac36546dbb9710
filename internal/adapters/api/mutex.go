package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
)

// AcquireMutex acquires or refreshes the project lock.
// A refusal (someone else holds it) is (false, nil).
func (c *Client) AcquireMutex(ctx context.Context, creds domain.Credentials, projectID string) (bool, error) {
	return c.postMutex(ctx, "acquire lock", creds, projectID, "acquire/")
}

// ReleaseMutex releases the project lock. A refusal is (false, nil).
func (c *Client) ReleaseMutex(ctx context.Context, creds domain.Credentials, projectID string) (bool, error) {
	return c.postMutex(ctx, "release lock", creds, projectID, "release/")
}

func (c *Client) postMutex(ctx context.Context, op string, creds domain.Credentials, projectID, action string) (bool, error) {
	if err := requireAuth(op, creds); err != nil {
		return false, err
	}

	req, err := c.newRequest(ctx, http.MethodPost,
		projectEndpoint(creds.ServerAddress, projectID, action), creds.Token, http.NoBody)
	if err != nil {
		return false, errclass.FromError(op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		logging.Logger.Info("Lock request accepted", "op", op, "id", projectID)
		return true, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	logging.Logger.Info("Lock request refused",
		"op", op,
		"id", projectID,
		"status", resp.StatusCode,
		"body", strings.TrimSpace(string(body)))
	return false, nil
}
