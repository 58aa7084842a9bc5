package academics

import (
	"context"

	"studyhub_backend/internal/model"
)

func (s *serv) UpdateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	err := s.validateCourse(course)
	if err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.UpdateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	// Сводка устарела, пересчитается при следующем чтении
	s.cache.Delete(course.UserID.String(), summaryEndpoint)

	return updated, nil
}
