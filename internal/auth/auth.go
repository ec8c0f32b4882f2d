package auth

import (
	"net/http"
)

// Authenticator resolves an inbound request to an Identity injected into the
// request context, or terminates the request with the appropriate status.
// Route groups choose which authenticator guards them; there is no ambient
// flag threading.
type Authenticator interface {
	Authenticator(next http.Handler) http.Handler
}
