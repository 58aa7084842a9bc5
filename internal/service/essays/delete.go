package essays

import (
	"context"

	"github.com/google/uuid"
)

func (s *serv) DeleteEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) error {
	return s.essayRepo.DeleteEssay(ctx, userID, essayID)
}
