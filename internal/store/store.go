package store

import (
	"context"

	"github.com/go-redis/redis/v8"
)

type Store interface {
	Mapping() Mapping
	Task() Task
	Health(ctx context.Context) error
	Close() error
}

type DataStore struct {
	client  *redis.Client
	mapping Mapping
	task    Task
}

func NewStore(client *redis.Client) Store {
	return &DataStore{
		client:  client,
		mapping: NewMappingStore(client),
		task:    NewTaskStore(client),
	}
}

func (s *DataStore) Mapping() Mapping {
	return s.mapping
}

func (s *DataStore) Task() Task {
	return s.task
}

// Health pings the key-value store. Callers use it to report store
// connectivity failures ahead of any blob-store access.
func (s *DataStore) Health(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return ErrStoreUnavailable
	}
	return nil
}

func (s *DataStore) Close() error {
	return s.client.Close()
}
