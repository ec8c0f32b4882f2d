package auth

import (
	"context"

	"go.uber.org/zap"
)

type Kind string

const (
	KindAdmin   Kind = "admin"
	KindStudent Kind = "student"
)

// Identity is the resolved identity of the current request. Exactly one is
// established per request and it is never persisted.
type Identity struct {
	Kind     Kind
	Username string

	// Claims is the raw user record returned by the student manager.
	// Empty for admin identities.
	Claims map[string]any
}

func NewAdminIdentity(username string) Identity {
	return Identity{Kind: KindAdmin, Username: username}
}

func NewStudentIdentity(username string, claims map[string]any) Identity {
	return Identity{Kind: KindStudent, Username: username, Claims: claims}
}

func (i Identity) IsAdmin() bool {
	return i.Kind == KindAdmin
}

type identityKeyType struct{}

var identityKey identityKeyType

func NewIdentityContext(ctx context.Context, i Identity) context.Context {
	return context.WithValue(ctx, identityKey, i)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	val := ctx.Value(identityKey)
	if val == nil {
		return Identity{}, false
	}
	return val.(Identity), true
}

func MustHaveIdentity(ctx context.Context) Identity {
	identity, found := IdentityFromContext(ctx)
	if !found {
		zap.S().Named("auth").Panic("failed to find identity in context")
	}
	return identity
}
