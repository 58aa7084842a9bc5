package goals

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

func (s *serv) ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	return s.goalRepo.ListGoals(ctx, userID)
}
