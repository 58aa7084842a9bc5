package profile

import (
	"context"
	"fmt"

	"studyhub_backend/internal/model"
)

const (
	maxGradeLevel = 12
	maxTargetGPA  = 4.0
)

func (s *serv) SaveProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	err := validateProfile(profile)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.UpsertProfile(ctx, profile)
}

// validateProfile - границы полей. Нулевые значения означают "не заполнено"
func validateProfile(profile *model.Profile) error {
	if profile.GradeLevel < 0 || profile.GradeLevel > maxGradeLevel {
		return fmt.Errorf("grade level must be between 0 and %d: %w", maxGradeLevel, model.ErrValidation)
	}
	if profile.TargetGPA < 0 || profile.TargetGPA > maxTargetGPA {
		return fmt.Errorf("target gpa must be between 0 and %.1f: %w", maxTargetGPA, model.ErrValidation)
	}
	return nil
}
