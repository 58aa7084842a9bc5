package academics

import (
	"context"
	"fmt"
	"strings"

	"studyhub_backend/internal/model"
)

func (s *serv) CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	err := s.validateCourse(course)
	if err != nil {
		return nil, err
	}

	created, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	// Сводка устарела, пересчитается при следующем чтении
	s.cache.Delete(course.UserID.String(), summaryEndpoint)

	return created, nil
}

// validateCourse - общая валидация для создания и обновления курса
func (s *serv) validateCourse(course *model.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("course name is required: %w", model.ErrValidation)
	}
	if course.Credits <= 0 || course.Credits > maxCredits {
		return fmt.Errorf("credits must be between 1 and %d: %w", maxCredits, model.ErrValidation)
	}
	if course.Grade != "" {
		_, ok := s.gradeScale.Points(course.Grade)
		if !ok {
			return fmt.Errorf("unknown grade %q: %w", course.Grade, model.ErrValidation)
		}
	}
	return nil
}
