package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/profile"
	"studyhub_backend/internal/model"
)

func ToProfileModel(req profile.ProfileRequest, userID uuid.UUID) *model.Profile {
	return &model.Profile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		School:      req.School,
		GradeLevel:  req.GradeLevel,
		TargetGPA:   req.TargetGPA,
		Bio:         req.Bio,
	}
}

func ToProfileResponse(p *model.Profile) profile.ProfileResponse {
	return profile.ProfileResponse{
		DisplayName: p.DisplayName,
		School:      p.School,
		GradeLevel:  p.GradeLevel,
		TargetGPA:   p.TargetGPA,
		Bio:         p.Bio,
		UpdatedAt:   p.UpdatedAt,
	}
}
