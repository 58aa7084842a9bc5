package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/tasks"
	"studyhub_backend/internal/model"
)

// ToTaskModel - при создании taskID передается uuid.Nil
func ToTaskModel(req tasks.TaskRequest, userID uuid.UUID, taskID uuid.UUID) *model.Task {
	return &model.Task{
		ID:        taskID,
		UserID:    userID,
		Title:     req.Title,
		Notes:     req.Notes,
		DueDate:   req.DueDate,
		Priority:  req.Priority,
		Completed: req.Completed,
	}
}

func ToTaskResponse(task model.Task) tasks.TaskResponse {
	return tasks.TaskResponse{
		ID:        task.ID.String(),
		Title:     task.Title,
		Notes:     task.Notes,
		DueDate:   task.DueDate,
		Priority:  task.Priority,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

func ToTasksResponse(list []model.Task) []tasks.TaskResponse {
	result := make([]tasks.TaskResponse, len(list))
	for i, task := range list {
		result[i] = ToTaskResponse(task)
	}
	return result
}
