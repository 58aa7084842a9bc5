package academics

import (
	"context"

	"github.com/google/uuid"
)

func (s *serv) DeleteCourse(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error {
	err := s.courseRepo.DeleteCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}

	// Сводка устарела, пересчитается при следующем чтении
	s.cache.Delete(userID.String(), summaryEndpoint)

	return nil
}
