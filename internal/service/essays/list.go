package essays

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

func (s *serv) ListEssays(ctx context.Context, userID uuid.UUID) ([]model.Essay, error) {
	return s.essayRepo.ListEssays(ctx, userID)
}
