package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/essays"
	"studyhub_backend/internal/model"
)

// ToEssayModel - при создании essayID передается uuid.Nil
func ToEssayModel(req essays.EssayRequest, userID uuid.UUID, essayID uuid.UUID) *model.Essay {
	return &model.Essay{
		ID:      essayID,
		UserID:  userID,
		Title:   req.Title,
		Prompt:  req.Prompt,
		Content: req.Content,
		Status:  req.Status,
	}
}

func ToEssayResponse(essay model.Essay) essays.EssayResponse {
	return essays.EssayResponse{
		ID:        essay.ID.String(),
		Title:     essay.Title,
		Prompt:    essay.Prompt,
		Content:   essay.Content,
		Status:    essay.Status,
		WordCount: essay.WordCount,
		CreatedAt: essay.CreatedAt,
		UpdatedAt: essay.UpdatedAt,
	}
}

func ToEssaysResponse(list []model.Essay) []essays.EssayResponse {
	result := make([]essays.EssayResponse, len(list))
	for i, essay := range list {
		result[i] = ToEssayResponse(essay)
	}
	return result
}
