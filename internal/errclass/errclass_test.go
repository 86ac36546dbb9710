package errclass

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected Kind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{404, KindNotFound},
		{422, KindValidation},
		{500, KindServer},
		{502, KindServer},
		{503, KindServer},
		{409, KindUnknown},
		{423, KindUnknown},
		{302, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyStatus(tt.code))
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o stalled" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"connection refused errno", &url.Error{Op: "Get", URL: "http://x", Err: opErr}, KindNetworkUnreachable},
		{"reset errno", fmt.Errorf("read: %w", syscall.ECONNRESET), KindNetworkUnreachable},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "nowhere.invalid"}, KindNetworkUnreachable},
		{"dns timeout", &net.DNSError{Err: "lookup timed out", Name: "slow", IsTimeout: true}, KindTimeout},
		{"context deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindTimeout},
		{"context canceled", fmt.Errorf("call: %w", context.Canceled), KindUnknown},
		{"canceled url error", &url.Error{Op: "Get", URL: "http://x", Err: context.Canceled}, KindUnknown},
		{"net timeout", &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, KindTimeout},
		{"message unreachable", errors.New("dial tcp: Network is unreachable"), KindNetworkUnreachable},
		{"message unknown host", errors.New("UnknownHost: unknown host repo"), KindNetworkUnreachable},
		{"message interrupted", errors.New("transfer interrupted"), KindTimeout},
		{"already classified", New(KindValidation, "op", "bad", nil), KindValidation},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyError(tt.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(FromStatus("list", 500, "", "")))
	assert.True(t, Retryable(New(KindNetworkUnreachable, "list", "", nil)))
	assert.False(t, Retryable(FromStatus("list", 401, "", "")))
	assert.False(t, Retryable(FromStatus("list", 422, "", "")))
	assert.False(t, Retryable(New(KindTimeout, "list", "", nil)))
	assert.False(t, Retryable(nil))
}

func TestError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", FromStatus("list projects", 503, "", "oops"))

	assert.ErrorIs(t, err, Server)
	assert.NotErrorIs(t, err, Auth)

	var classified *Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, 503, classified.StatusCode)
	assert.Equal(t, "oops", classified.Body)
	assert.Contains(t, classified.Error(), "HTTP 503")
}

func TestFromError_KeepsExistingClassification(t *testing.T) {
	inner := New(KindAuth, "", "token rejected", nil)

	got := FromError("upload", inner)

	assert.Equal(t, KindAuth, got.Kind)
	assert.Equal(t, "upload", got.Op)
	assert.Empty(t, inner.Op, "original must not be mutated")
}

func TestUserMessage(t *testing.T) {
	auth := FromStatus("login", 401, "Invalid credentials.", "{}")
	assert.Equal(t, "Invalid credentials.", UserMessage(auth, "https://repo"))

	unreachable := New(KindNetworkUnreachable, "list", "", errors.New("connection refused"))
	msg := UserMessage(unreachable, "https://repo")
	assert.Contains(t, msg, "Cannot reach https://repo")
	assert.NotContains(t, msg, "connection refused")

	timeout := New(KindTimeout, "download", "", context.DeadlineExceeded)
	assert.Contains(t, UserMessage(timeout, ""), "the server did not answer in time")

	server := FromStatus("list projects", 500, "", "trace")
	assert.Contains(t, UserMessage(server, "https://repo"), "list projects failed")
}

func TestUserMessage_CanceledIsInterrupted(t *testing.T) {
	canceled := FromError("download project", fmt.Errorf("read body: %w", context.Canceled))

	msg := UserMessage(canceled, "https://repo")

	assert.Equal(t, KindUnknown, canceled.Kind)
	assert.Equal(t, "download project was interrupted.", msg)
	assert.NotContains(t, msg, "did not answer in time")
	assert.False(t, Retryable(canceled))
}
