package essays

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) UpdateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error) {
	err := validateEssay(essay)
	if err != nil {
		return nil, err
	}

	essay.WordCount = countWords(essay.Content)

	return s.essayRepo.UpdateEssay(ctx, essay)
}
