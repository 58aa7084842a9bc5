package academics

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

func (s *serv) ListCourses(ctx context.Context, userID uuid.UUID) ([]model.Course, error) {
	return s.courseRepo.ListCourses(ctx, userID)
}
