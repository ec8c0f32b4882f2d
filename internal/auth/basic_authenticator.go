package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var ErrBadCredentials = errors.New("incorrect username or password")

// BasicAuthenticator verifies administrator credentials carried as HTTP Basic
// auth against the configured pair. Verification never contacts any external
// service and never reveals which of the two values mismatched.
type BasicAuthenticator struct {
	username string
	password string
}

func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	return &BasicAuthenticator{username: username, password: password}, nil
}

// Authenticate compares the supplied credentials in constant time.
func (b *BasicAuthenticator) Authenticate(username, password string) (Identity, error) {
	usernameOk := subtle.ConstantTimeCompare([]byte(username), []byte(b.username))
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(b.password))

	if usernameOk&passwordOk != 1 {
		return Identity{}, ErrBadCredentials
	}
	return NewAdminIdentity(username), nil
}

func (b *BasicAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			challenge(w)
			return
		}

		identity, err := b.Authenticate(username, password)
		if err != nil {
			zap.S().Named("auth").Warnf("admin authentication failed for user %q", username)
			challenge(w)
			return
		}

		ctx := NewIdentityContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="course-scraper admin"`)
	http.Error(w, "Incorrect username or password", http.StatusUnauthorized)
}
