package tasks

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	err := validateTask(task)
	if err != nil {
		return nil, err
	}

	return s.taskRepo.UpdateTask(ctx, task)
}
