package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskRefreshDirectory = "task:refresh_directory"
)

// RefreshDirectoryPayload is the data the directory-mirror job needs
type RefreshDirectoryPayload struct {
	// Limit caps the number of upserted rows, mainly for manual runs
	Limit *int `json:"limit"`
}

// NewRefreshDirectoryTask creates a new task for asynq
func NewRefreshDirectoryTask(limit *int) (*asynq.Task, error) {
	payload := RefreshDirectoryPayload{
		Limit: limit,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskRefreshDirectory, payloadBytes), nil
}
