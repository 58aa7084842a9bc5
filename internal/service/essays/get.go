package essays

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

func (s *serv) GetEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) (*model.Essay, error) {
	return s.essayRepo.GetEssay(ctx, userID, essayID)
}
