package store

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateKey     = errors.New("already exists")
	ErrInvalidKey       = errors.New("invalid key")
	ErrStoreUnavailable = errors.New("key-value store unavailable")
)
