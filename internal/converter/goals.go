package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/goals"
	"studyhub_backend/internal/model"
)

// ToGoalModel - при создании goalID передается uuid.Nil
func ToGoalModel(req goals.GoalRequest, userID uuid.UUID, goalID uuid.UUID) *model.Goal {
	return &model.Goal{
		ID:          goalID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Progress:    req.Progress,
	}
}

func ToGoalResponse(goal model.Goal) goals.GoalResponse {
	return goals.GoalResponse{
		ID:          goal.ID.String(),
		Title:       goal.Title,
		Description: goal.Description,
		TargetDate:  goal.TargetDate,
		Progress:    goal.Progress,
		Achieved:    goal.Progress == 100,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func ToGoalsResponse(list []model.Goal) []goals.GoalResponse {
	result := make([]goals.GoalResponse, len(list))
	for i, goal := range list {
		result[i] = ToGoalResponse(goal)
	}
	return result
}
