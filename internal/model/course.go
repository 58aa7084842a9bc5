package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Code      string
	Credits   int
	Grade     string // Пустая строка - оценки еще нет
	Term      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcademicSummary - сводка по успеваемости пользователя.
// TargetGPA берется из профиля, при незаполненном профиле - из шкалы оценок
type AcademicSummary struct {
	GPA          float64
	TargetGPA    float64
	TotalCredits int
	CourseCount  int
	GradedCount  int
}
