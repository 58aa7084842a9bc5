package model

import (
	"time"

	"github.com/google/uuid"
)

// Приоритеты задач
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Notes     string
	DueDate   *time.Time // nil - без дедлайна
	Priority  string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
