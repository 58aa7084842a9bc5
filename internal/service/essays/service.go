package essays

import (
	"fmt"
	"strings"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

type serv struct {
	essayRepo repository.EssayRepository
}

func NewService(essayRepo repository.EssayRepository) service.EssayService {
	return &serv{
		essayRepo: essayRepo,
	}
}

// countWords - число слов по пробельным разделителям.
// Клиентскому word_count не доверяем, поле пересчитывается на каждой записи
func countWords(content string) int {
	return len(strings.Fields(content))
}

func validateEssay(essay *model.Essay) error {
	if strings.TrimSpace(essay.Title) == "" {
		return fmt.Errorf("essay title is required: %w", model.ErrValidation)
	}
	switch essay.Status {
	case model.EssayStatusDraft, model.EssayStatusRevising, model.EssayStatusFinal:
	default:
		return fmt.Errorf("unknown essay status %q: %w", essay.Status, model.ErrValidation)
	}
	return nil
}
