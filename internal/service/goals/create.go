package goals

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	err := validateGoal(goal)
	if err != nil {
		return nil, err
	}

	return s.goalRepo.CreateGoal(ctx, goal)
}
