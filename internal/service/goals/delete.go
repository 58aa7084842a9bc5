package goals

import (
	"context"

	"github.com/google/uuid"
)

func (s *serv) DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error {
	return s.goalRepo.DeleteGoal(ctx, userID, goalID)
}
