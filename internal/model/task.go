package model

import "time"

// Task is a single dashboard item. ID is assigned at creation and is the only
// handle used to mutate the task; Title is trimmed and never empty.
type Task struct {
	ID        string
	Title     string
	CreatedAt time.Time
}
