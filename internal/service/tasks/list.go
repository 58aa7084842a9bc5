package tasks

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

func (s *serv) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	return s.taskRepo.ListTasks(ctx, userID)
}
