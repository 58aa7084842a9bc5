package tasks

import (
	"context"

	"github.com/google/uuid"
)

func (s *serv) DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error {
	return s.taskRepo.DeleteTask(ctx, userID, taskID)
}
