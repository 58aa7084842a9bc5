package converter

import (
	"github.com/google/uuid"

	"studyhub_backend/internal/api/dto/canvas"
	"studyhub_backend/internal/model"
)

func ToCanvasAccountModel(req canvas.ConnectRequest, userID uuid.UUID) *model.CanvasAccount {
	return &model.CanvasAccount{
		UserID:      userID,
		Domain:      req.Domain,
		AccessToken: req.AccessToken,
	}
}

// ToCanvasAccountResponse - nil означает отсутствие привязки
func ToCanvasAccountResponse(account *model.CanvasAccount) canvas.AccountResponse {
	if account == nil {
		return canvas.AccountResponse{Connected: false}
	}

	connectedAt := account.ConnectedAt
	return canvas.AccountResponse{
		Connected:   true,
		Domain:      account.Domain,
		ConnectedAt: &connectedAt,
	}
}

func ToCanvasCoursesResponse(courses []model.CanvasCourse) []canvas.CourseResponse {
	result := make([]canvas.CourseResponse, len(courses))
	for i, course := range courses {
		result[i] = canvas.CourseResponse{
			ID:         course.ID,
			Name:       course.Name,
			CourseCode: course.CourseCode,
		}
	}
	return result
}

func ToCanvasAssignmentsResponse(assignments []model.CanvasAssignment) []canvas.AssignmentResponse {
	result := make([]canvas.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		result[i] = canvas.AssignmentResponse{
			ID:             assignment.ID,
			Name:           assignment.Name,
			DueAt:          assignment.DueAt,
			PointsPossible: assignment.PointsPossible,
			HTMLURL:        assignment.HTMLURL,
		}
	}
	return result
}
