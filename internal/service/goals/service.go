package goals

import (
	"fmt"
	"strings"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

const maxProgress = 100

type serv struct {
	goalRepo repository.GoalRepository
}

func NewService(goalRepo repository.GoalRepository) service.GoalService {
	return &serv{
		goalRepo: goalRepo,
	}
}

func validateGoal(goal *model.Goal) error {
	if strings.TrimSpace(goal.Title) == "" {
		return fmt.Errorf("goal title is required: %w", model.ErrValidation)
	}
	if goal.Progress < 0 || goal.Progress > maxProgress {
		return fmt.Errorf("progress must be between 0 and %d: %w", maxProgress, model.ErrValidation)
	}
	return nil
}
