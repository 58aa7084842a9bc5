package tasks

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Priority == "" {
		task.Priority = model.TaskPriorityMedium
	}

	err := validateTask(task)
	if err != nil {
		return nil, err
	}

	return s.taskRepo.CreateTask(ctx, task)
}
