package tasks

import (
	"fmt"
	"strings"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

type serv struct {
	taskRepo repository.TaskRepository
}

func NewService(taskRepo repository.TaskRepository) service.TaskService {
	return &serv{
		taskRepo: taskRepo,
	}
}

func validateTask(task *model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("task title is required: %w", model.ErrValidation)
	}
	switch task.Priority {
	case model.TaskPriorityLow, model.TaskPriorityMedium, model.TaskPriorityHigh:
	default:
		return fmt.Errorf("unknown task priority %q: %w", task.Priority, model.ErrValidation)
	}
	return nil
}
