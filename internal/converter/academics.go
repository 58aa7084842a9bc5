package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/academics"
	"studyhub_backend/internal/model"
)

// ToCourseModel - при создании courseID передается uuid.Nil
func ToCourseModel(req academics.CourseRequest, userID uuid.UUID, courseID uuid.UUID) *model.Course {
	return &model.Course{
		ID:      courseID,
		UserID:  userID,
		Name:    req.Name,
		Code:    req.Code,
		Credits: req.Credits,
		Grade:   req.Grade,
		Term:    req.Term,
	}
}

func ToCourseResponse(course model.Course) academics.CourseResponse {
	return academics.CourseResponse{
		ID:        course.ID.String(),
		Name:      course.Name,
		Code:      course.Code,
		Credits:   course.Credits,
		Grade:     course.Grade,
		Term:      course.Term,
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
}

func ToCoursesResponse(courses []model.Course) []academics.CourseResponse {
	result := make([]academics.CourseResponse, len(courses))
	for i, course := range courses {
		result[i] = ToCourseResponse(course)
	}
	return result
}

func ToSummaryResponse(summary *model.AcademicSummary) academics.SummaryResponse {
	return academics.SummaryResponse{
		GPA:          summary.GPA,
		TargetGPA:    summary.TargetGPA,
		TotalCredits: summary.TotalCredits,
		CourseCount:  summary.CourseCount,
		GradedCount:  summary.GradedCount,
	}
}
