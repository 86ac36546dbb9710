package domain

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
)

// tokenPattern matches a pre-issued repository token
var tokenPattern = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

// Credentials is the authenticated identity used for repository calls.
// It is a value: a login produces a new one, it is never mutated in place.
type Credentials struct {
	ServerAddress string
	Token         string
}

// IsAuthenticated reports whether both token and server address are set
func (c Credentials) IsAuthenticated() bool {
	return c.Token != "" && c.ServerAddress != ""
}

// Session holds the current credentials of one client.
// Token and server address are always replaced together.
type Session struct {
	current atomic.Pointer[Credentials]
}

// NewSession creates an unauthenticated session
func NewSession() *Session {
	s := &Session{}
	s.current.Store(&Credentials{})
	return s
}

// Set installs new credentials in a single atomic store
func (s *Session) Set(creds Credentials) {
	s.current.Store(&creds)
}

// Clear resets the session to unauthenticated
func (s *Session) Clear() {
	s.current.Store(&Credentials{})
}

// Snapshot returns a consistent copy of the current credentials
func (s *Session) Snapshot() Credentials {
	if c := s.current.Load(); c != nil {
		return *c
	}
	return Credentials{}
}

// IsAuthenticated reports whether the session holds usable credentials
func (s *Session) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// LoginRequest carries either email+password or a pre-issued token.
// A non-empty Token takes precedence over Email/Password.
type LoginRequest struct {
	Email         string
	Password      string
	ServerAddress string
	Token         string
}

// UsesToken reports whether the request authenticates with a token
func (r LoginRequest) UsesToken() bool {
	return strings.TrimSpace(r.Token) != ""
}

// Validate checks the request shape without touching the network
func (r LoginRequest) Validate() error {
	if r.UsesToken() {
		return ValidateToken(r.Token)
	}
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// ValidateToken checks that token is exactly 40 hexadecimal characters
func ValidateToken(token string) error {
	if !tokenPattern.MatchString(strings.TrimSpace(token)) {
		return ErrInvalidToken
	}
	return nil
}

// NormalizeServerAddress turns user input into an absolute base URL.
//
// An explicit scheme is kept verbatim. Without one, loopback and private
// network hosts (localhost, 127.*, 10.*, 172.16-31.*, 192.168.*) get http://
// and everything else gets https://. This exists so local development servers
// work without typing a scheme; it is a usability rule, not a security control.
func NormalizeServerAddress(input string) (string, error) {
	addr := strings.TrimSpace(input)
	if addr == "" {
		return "", ErrInvalidServerAddress
	}

	if !strings.Contains(addr, "://") {
		host := addr
		if i := strings.IndexAny(host, "/?#"); i >= 0 {
			host = host[:i]
		}
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		scheme := "https://"
		if isPrivateHost(host) {
			scheme = "http://"
		}
		addr = scheme + addr
	}

	u, err := url.Parse(addr)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidServerAddress, input)
	}

	return strings.TrimRight(addr, "/"), nil
}

func isPrivateHost(host string) bool {
	host = strings.ToLower(strings.Trim(host, "[]"))
	if host == "localhost" {
		return true
	}

	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return false
	}
	switch octets[0] {
	case "127", "10":
		return true
	case "192":
		return octets[1] == "168"
	case "172":
		second, err := strconv.Atoi(octets[1])
		return err == nil && second >= 16 && second <= 31
	}
	return false
}
