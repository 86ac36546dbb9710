package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

const (
	downloadAction = "download/ariane_tml/"
	uploadAction   = "upload/ariane_tml/"
)

// DownloadProject streams the project's survey file into dst.
// 404 and 422 are reported as statuses, not errors.
func (c *Client) DownloadProject(ctx context.Context, creds domain.Credentials, projectID string, dst io.Writer) (ports.DownloadStatus, error) {
	const op = "download project"
	if err := requireAuth(op, creds); err != nil {
		return ports.DownloadOK, err
	}

	req, err := c.newRequest(ctx, http.MethodGet,
		projectEndpoint(creds.ServerAddress, projectID, downloadAction), creds.Token, nil)
	if err != nil {
		return ports.DownloadOK, errclass.FromError(op, err)
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.do(op, req)
	if err != nil {
		return ports.DownloadOK, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		written, err := io.Copy(dst, resp.Body)
		if err != nil {
			return ports.DownloadOK, errclass.FromError(op, err)
		}
		logging.Logger.Info("Downloaded project", "id", projectID, "bytes", written)
		return ports.DownloadOK, nil
	case http.StatusNotFound:
		logging.Logger.Info("Project has no file yet", "id", projectID)
		return ports.DownloadNotFound, nil
	case http.StatusUnprocessableEntity:
		logging.Logger.Info("Project exists but is empty", "id", projectID)
		return ports.DownloadEmpty, nil
	default:
		return ports.DownloadOK, statusError(op, resp)
	}
}

// UploadProject sends artifact as the project's new survey file.
// The body has exactly two parts: message and artifact.
func (c *Client) UploadProject(ctx context.Context, creds domain.Credentials, projectID, message string, artifact io.Reader) error {
	const op = "upload project"
	if err := requireAuth(op, creds); err != nil {
		return err
	}

	boundary, err := randomBoundary()
	if err != nil {
		return errclass.New(errclass.KindUnknown, op, "failed to generate multipart boundary", err)
	}

	// Buffered so the request carries a Content-Length
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.SetBoundary(boundary); err != nil {
		return errclass.New(errclass.KindUnknown, op, "invalid multipart boundary", err)
	}
	if err := mw.WriteField("message", message); err != nil {
		return errclass.FromError(op, err)
	}
	part, err := mw.CreateFormFile("artifact", domain.LocalFileName(projectID))
	if err != nil {
		return errclass.FromError(op, err)
	}
	size, err := io.Copy(part, artifact)
	if err != nil {
		return errclass.New(errclass.KindUnknown, op, "failed to read local project file", err)
	}
	if err := mw.Close(); err != nil {
		return errclass.FromError(op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPut,
		projectEndpoint(creds.ServerAddress, projectID, uploadAction), creds.Token, &body)
	if err != nil {
		return errclass.FromError(op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(op, resp)
	}

	logging.Logger.Info("Uploaded project", "id", projectID, "bytes", size)
	return nil
}

var boundaryLimit = new(big.Int).Lsh(big.NewInt(1), 256)

// randomBoundary renders 256 random bits in base 36.
// The result is alphanumeric and at most 50 characters long.
func randomBoundary() (string, error) {
	n, err := rand.Int(rand.Reader, boundaryLimit)
	if err != nil {
		return "", fmt.Errorf("failed to read random bits: %w", err)
	}
	return n.Text(36), nil
}
