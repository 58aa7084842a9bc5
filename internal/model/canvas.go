package model

import (
	"time"

	"github.com/google/uuid"
)

// CanvasAccount - привязка аккаунта Canvas LMS к пользователю
type CanvasAccount struct {
	UserID      uuid.UUID
	Domain      string
	AccessToken string
	ConnectedAt time.Time
}

// CanvasCourse - курс из Canvas API
type CanvasCourse struct {
	ID         int64
	Name       string
	CourseCode string
}

// CanvasAssignment - задание из Canvas API
type CanvasAssignment struct {
	ID             int64
	Name           string
	DueAt          *time.Time
	PointsPossible float64
	HTMLURL        string
}
