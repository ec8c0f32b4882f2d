package storage

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the only storage failure with its own identity; every
// other object-store error is reported as a StorageError carrying the
// original message.
var ErrObjectNotFound = errors.New("object does not exist")

type StorageError struct {
	error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{fmt.Errorf("object store %s failed: %v", op, err)}
}
