package flower

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// scraperTask is the registered celery task the dashboard dispatches.
	scraperTask = "scraper_task"

	healthCheckTimeout = 5 * time.Second
)

// ErrUnreachable marks transport failures talking to the dashboard, as
// opposed to the dashboard answering with an error status.
var ErrUnreachable = errors.New("task dashboard unreachable")

// TaskStatus is the live view of a task as reported by the dashboard.
type TaskStatus struct {
	State   string `json:"state"`
	Result  any    `json:"result"`
	Runtime any    `json:"runtime"`
	Worker  any    `json:"worker"`
}

// Client talks to the Flower task dashboard over its HTTP API with basic auth.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		password: password,
		client:   &http.Client{},
	}
}

// Submit dispatches a scraping task and returns the dashboard task id.
func (c *Client) Submit(ctx context.Context, taskName string) (string, error) {
	payload, err := json.Marshal(map[string]any{"args": []string{taskName}})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/task/async-apply/%s", c.baseURL, scraperTask), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("task dashboard rejected submission with status %d", resp.StatusCode)
	}

	var result struct {
		TaskID string `json:"task-id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode task dashboard response")
	}
	if result.TaskID == "" {
		return "", fmt.Errorf("task dashboard returned no task id")
	}
	return result.TaskID, nil
}

// GetStatus fetches the live status document for a task.
func (c *Client) GetStatus(ctx context.Context, taskID string) (*TaskStatus, error) {
	doc, err := c.GetStatusDocument(ctx, taskID)
	if err != nil {
		return nil, err
	}

	status := &TaskStatus{
		Result:  doc["result"],
		Runtime: doc["runtime"],
		Worker:  doc["worker"],
	}
	if state, ok := doc["state"].(string); ok {
		status.State = state
	}
	return status, nil
}

// GetStatusDocument fetches the raw status document as the dashboard reports
// it, for callers that pass it through unmodified.
func (c *Client) GetStatusDocument(ctx context.Context, taskID string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/task/info/%s", c.baseURL, taskID), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("task dashboard returned status %d for task %s", resp.StatusCode, taskID)
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode task status")
	}
	return doc, nil
}

// CheckHealth probes the dashboard metrics endpoint with a short timeout.
// Health is a boolean, never a failure channel.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metrics", nil)
	if err != nil {
		return false
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		zap.S().Named("flower").Debugf("health check failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// URL returns the configured dashboard base URL.
func (c *Client) URL() string {
	return c.baseURL
}
