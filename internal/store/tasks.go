package store

import (
	"encoding/json"
	"fmt"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

// LoadTasks reads the task list stored under key. It never returns a nil
// slice: a missing key, an unreadable slot or a malformed value all yield an
// empty list, and the error (if any) is returned for the caller to log.
func LoadTasks(kv KV, key string) ([]model.Task, error) {
	tasks := []model.Task{}

	jsonBytes, ok, err := kv.Get(key)
	if err != nil {
		return tasks, fmt.Errorf("failed to read tasks: %w", err)
	}
	if !ok || len(jsonBytes) == 0 {
		return tasks, nil
	}

	var stored []model.Task
	if err := json.Unmarshal(jsonBytes, &stored); err != nil {
		return tasks, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if stored == nil {
		return tasks, nil
	}
	return stored, nil
}

func SaveTasks(kv KV, key string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	jsonBytes, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	if err := kv.Set(key, jsonBytes); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
