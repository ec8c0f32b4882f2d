package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidToken means the student manager rejected the token.
type ErrInvalidToken struct {
	error
}

func NewErrInvalidToken(statusCode int) *ErrInvalidToken {
	return &ErrInvalidToken{fmt.Errorf("invalid or expired token: student manager returned status %d", statusCode)}
}

// ErrIdentityUnreachable means the student manager could not be reached at
// all. Kept distinct from ErrInvalidToken so operators can tell "token
// rejected" from "identity service down".
type ErrIdentityUnreachable struct {
	error
}

func NewErrIdentityUnreachable(err error) *ErrIdentityUnreachable {
	return &ErrIdentityUnreachable{errors.Wrap(err, "failed to connect to authentication service")}
}

// ErrMalformedIdentity means the student manager accepted the token but its
// response body could not be decoded.
type ErrMalformedIdentity struct {
	error
}

func NewErrMalformedIdentity(err error) *ErrMalformedIdentity {
	return &ErrMalformedIdentity{errors.Wrap(err, "student manager returned a malformed response")}
}

// StudentAuthenticator verifies bearer tokens against the external student
// manager. Every request re-authenticates; nothing is cached.
type StudentAuthenticator struct {
	authenticateURL string
	client          *http.Client
}

func NewStudentAuthenticator(studentManagerURL string) (*StudentAuthenticator, error) {
	if studentManagerURL == "" {
		return nil, fmt.Errorf("student manager url is required")
	}
	if !strings.HasSuffix(studentManagerURL, "/") {
		studentManagerURL += "/"
	}
	return &StudentAuthenticator{
		authenticateURL: studentManagerURL + "authenticate",
		client:          &http.Client{},
	}, nil
}

// Authenticate forwards the token to the student manager as an access_token
// grant and extracts the username from the returned user record.
func (s *StudentAuthenticator) Authenticate(ctx context.Context, token string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.authenticateURL, nil)
	if err != nil {
		return Identity{}, err
	}
	q := req.URL.Query()
	q.Set("grant_type", "access_token")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		zap.S().Named("auth").Warnf("authentication failed - connection error: %v", err)
		return Identity{}, NewErrIdentityUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.S().Named("auth").Warnf("authentication failed - token %q returned status code %d", truncateToken(token), resp.StatusCode)
		return Identity{}, NewErrInvalidToken(resp.StatusCode)
	}

	var claims map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		zap.S().Named("auth").Warnf("authentication failed - undecodable response body: %v", err)
		return Identity{}, NewErrMalformedIdentity(err)
	}

	username := extractUsername(claims)
	zap.S().Named("auth").Infof("authentication successful - user %q", username)

	return NewStudentIdentity(username, claims), nil
}

func (s *StudentAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// An identity established upstream (the admin passthrough route)
		// satisfies the authentication requirement without a token.
		if identity, found := IdentityFromContext(r.Context()); found && identity.IsAdmin() {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || len(header) == len("Bearer ") {
			zap.S().Named("auth").Warn("missing or invalid auth scheme - expected Bearer token")
			http.Error(w, "Bearer authentication required", http.StatusUnauthorized)
			return
		}

		identity, err := s.Authenticate(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			switch err.(type) {
			case *ErrIdentityUnreachable:
				http.Error(w, "Failed to connect to authentication service", http.StatusBadGateway)
			case *ErrMalformedIdentity:
				http.Error(w, "Authentication service returned an invalid response", http.StatusBadGateway)
			default:
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			}
			return
		}

		ctx := NewIdentityContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractUsername(claims map[string]any) string {
	userdata, ok := claims["userdata"].(map[string]any)
	if !ok {
		return "unknown"
	}
	username, ok := userdata["username"].(string)
	if !ok {
		return "unknown"
	}
	return username
}

func truncateToken(token string) string {
	if len(token) > 10 {
		return token[:10] + "..."
	}
	return token
}
