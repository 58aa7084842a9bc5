package tasks

import "time"

type TaskRequest struct {
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	DueDate   *time.Time `json:"due_date"` // null - без дедлайна
	Priority  string     `json:"priority"` // low | medium | high
	Completed bool       `json:"completed"`
}

type TaskResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	DueDate   *time.Time `json:"due_date"`
	Priority  string     `json:"priority"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
