package service

import (
	"context"
	"errors"
	"sort"
	"time"

	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/flower"
	"github.com/kogocampus/course-scraper/internal/store"
	"github.com/kogocampus/course-scraper/internal/store/model"
	"github.com/kogocampus/course-scraper/pkg/metrics"
	"go.uber.org/zap"
)

// TaskLookupResult is the typed per-item outcome of a best-effort task
// listing: either the merged task info or the dashboard lookup error. This
// keeps "no tasks" distinguishable from "all lookups failed".
type TaskLookupResult struct {
	Task api.TaskInfo
	Err  error
}

// TaskService submits scraping tasks to the dashboard and tracks them in the
// mapping store. Live status is never cached.
type TaskService struct {
	store  store.Store
	flower *flower.Client
}

func NewTaskService(s store.Store, f *flower.Client) *TaskService {
	return &TaskService{store: s, flower: f}
}

// Submit dispatches the task, probes its initial state once, and persists the
// bookkeeping record so later listings know the task exists.
func (t *TaskService) Submit(ctx context.Context, taskName string) (*model.TaskRecord, error) {
	taskID, err := t.flower.Submit(ctx, taskName)
	if err != nil {
		metrics.IncreaseFlowerTasksSubmitted("failed")
		return nil, NewErrTaskSubmission(taskName, err)
	}

	// One follow-up status call captures the initial state; the submission
	// already succeeded, so a probe failure falls back to PENDING.
	initialState := "PENDING"
	if status, err := t.flower.GetStatus(ctx, taskID); err == nil && status.State != "" {
		initialState = status.State
	}

	record := model.TaskRecord{
		TaskName:  taskName,
		TaskID:    taskID,
		Timestamp: time.Now().UTC(),
		Status:    initialState,
	}
	if err := t.store.Task().Save(ctx, record); err != nil {
		return nil, err
	}

	metrics.IncreaseFlowerTasksSubmitted("accepted")
	zap.S().Named("task").Infof("task %q submitted, id %s, state %s", taskName, taskID, initialState)
	return &record, nil
}

// List polls the dashboard once per known task record, sequentially, and
// returns a typed result per record sorted newest first. Callers decide what
// to do with failed lookups.
func (t *TaskService) List(ctx context.Context) ([]TaskLookupResult, error) {
	records, err := t.store.Task().List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Timestamp.After(records[j].Timestamp) })

	results := make([]TaskLookupResult, 0, len(records))
	for _, record := range records {
		status, err := t.flower.GetStatus(ctx, record.TaskID)
		if err != nil {
			zap.S().Named("task").Warnf("dashboard lookup failed for task %q (%s): %v", record.TaskName, record.TaskID, err)
			results = append(results, TaskLookupResult{Err: NewErrTaskNotFound(record.TaskID, err)})
			continue
		}
		results = append(results, TaskLookupResult{Task: api.TaskInfo{
			TaskName:  record.TaskName,
			TaskID:    record.TaskID,
			Timestamp: record.Timestamp.Format(time.RFC3339),
			Status:    status.State,
			Result:    status.Result,
			Runtime:   status.Runtime,
			Worker:    status.Worker,
		}})
	}
	return results, nil
}

// GetStatusDocument passes the dashboard's status document through unmodified.
func (t *TaskService) GetStatusDocument(ctx context.Context, taskID string) (map[string]any, error) {
	doc, err := t.flower.GetStatusDocument(ctx, taskID)
	if err != nil {
		if errors.Is(err, flower.ErrUnreachable) {
			return nil, NewErrDashboardUnreachable(err)
		}
		return nil, NewErrTaskNotFound(taskID, err)
	}
	return doc, nil
}

// Health reports dashboard liveness as a boolean.
func (t *TaskService) Health(ctx context.Context) *api.FlowerHealth {
	return &api.FlowerHealth{
		Healthy:   t.flower.CheckHealth(ctx),
		FlowerURL: t.flower.URL(),
	}
}
