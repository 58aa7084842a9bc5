package essays

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) CreateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error) {
	if essay.Status == "" {
		essay.Status = model.EssayStatusDraft
	}

	err := validateEssay(essay)
	if err != nil {
		return nil, err
	}

	essay.WordCount = countWords(essay.Content)

	return s.essayRepo.CreateEssay(ctx, essay)
}
