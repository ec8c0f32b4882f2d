package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kogocampus/course-scraper/internal/store/model"
)

const taskKeyPrefix = "flower_task:"

const (
	taskFieldName      = "task_name"
	taskFieldID        = "task_id"
	taskFieldTimestamp = "timestamp"
	taskFieldStatus    = "status"
)

type Task interface {
	Save(ctx context.Context, record model.TaskRecord) error
	List(ctx context.Context) ([]model.TaskRecord, error)
}

type TaskStore struct {
	client *redis.Client
}

// Make sure we conform to the Task interface
var _ Task = (*TaskStore)(nil)

func NewTaskStore(client *redis.Client) Task {
	return &TaskStore{client: client}
}

// Save persists the bookkeeping record for a submitted task. A record of the
// same name supersedes the previous one; records are otherwise immutable.
func (s *TaskStore) Save(ctx context.Context, record model.TaskRecord) error {
	if record.TaskName == "" || strings.Contains(record.TaskName, keyDelimiter) {
		return fmt.Errorf("%w: task name %q", ErrInvalidKey, record.TaskName)
	}

	fields := map[string]any{
		taskFieldName:      record.TaskName,
		taskFieldID:        record.TaskID,
		taskFieldTimestamp: record.Timestamp.Format(time.RFC3339),
		taskFieldStatus:    record.Status,
	}
	if err := s.client.HSet(ctx, taskKeyPrefix+record.TaskName, fields).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *TaskStore) List(ctx context.Context) ([]model.TaskRecord, error) {
	keys, err := s.client.Keys(ctx, taskKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	records := make([]model.TaskRecord, 0, len(keys))
	for _, key := range keys {
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if len(fields) == 0 || fields[taskFieldID] == "" {
			continue
		}

		timestamp, err := time.Parse(time.RFC3339, fields[taskFieldTimestamp])
		if err != nil {
			timestamp = time.Time{}
		}

		records = append(records, model.TaskRecord{
			TaskName:  fields[taskFieldName],
			TaskID:    fields[taskFieldID],
			Timestamp: timestamp,
			Status:    fields[taskFieldStatus],
		})
	}
	return records, nil
}
