package academics

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// GetSummary - сводка по успеваемости через кэш.
// Запись живет недолго и дополнительно сбрасывается при изменении курсов,
// так что после записи пользователь сразу видит свежий результат
func (s *serv) GetSummary(ctx context.Context, userID uuid.UUID) (*model.AcademicSummary, error) {
	v, err := s.cache.GetOrFetch(userID.String(), summaryEndpoint, s.cacheCfg.SummaryTTL(), func() (any, error) {
		return s.buildSummary(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.AcademicSummary), nil
}

func (s *serv) buildSummary(ctx context.Context, userID uuid.UUID) (*model.AcademicSummary, error) {
	courses, err := s.courseRepo.ListCourses(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := computeSummary(courses, s.gradeScale)

	// Целевой GPA берем из профиля, при пустом профиле - дефолт шкалы
	summary.TargetGPA = s.gradeScale.DefaultTargetGPA()

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if err == nil && profile.TargetGPA > 0 {
		summary.TargetGPA = profile.TargetGPA
	}

	return summary, nil
}
