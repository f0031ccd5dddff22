// Package store loads task collection snapshots for the timeline engine
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/tidwall/gjson"
)

// Client loads tasks from a Source
type Client struct {
	source Source
	logger *slog.Logger
}

// NewClient creates a new store client with dependency injection
func NewClient(source Source, logger *slog.Logger) *Client {
	return &Client{
		source: source,
		logger: logger,
	}
}

// Source returns the client's source
func (c *Client) Source() Source {
	return c.source
}

// List reads the document and decodes it. The document must be a JSON array
// of tasks or an object carrying one under "tasks"; anything else is a
// *domain.StoreError wrapping domain.ErrNotList.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	c.logger.Debug("loading tasks", "source", c.source.Name())

	data, err := c.source.Read(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := Parse(data)
	if err != nil {
		var se *domain.StoreError
		if errors.As(err, &se) && se.Path == "" {
			se.Path = c.source.Name()
		}
		return nil, err
	}

	for i := range tasks {
		if strings.TrimSpace(tasks[i].ID) == "" {
			tasks[i].ID = uuid.NewString()
			c.logger.Warn("task has no id, synthesized one",
				"index", i, "id", tasks[i].ID, "title", tasks[i].Title)
		}
	}

	c.logger.Debug("loaded tasks", "count", len(tasks))
	return tasks, nil
}

// Parse decodes a task document without touching IDs
func Parse(data []byte) ([]domain.Task, error) {
	if !gjson.ValidBytes(data) {
		return nil, &domain.StoreError{Op: "parse", Message: "invalid JSON", Err: domain.ErrInvalidJSON}
	}

	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("tasks")
	}
	if !list.IsArray() {
		return nil, &domain.StoreError{Op: "parse", Err: domain.ErrNotList}
	}

	items := list.Array()
	tasks := make([]domain.Task, 0, len(items))
	for i, item := range items {
		var task domain.Task
		if err := json.Unmarshal([]byte(item.Raw), &task); err != nil {
			return nil, &domain.StoreError{Op: "decode", Message: fmt.Sprintf("task %d: %v", i, err), Err: err}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
