package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile - профиль студента, создается и обновляется через upsert
type Profile struct {
	UserID      uuid.UUID
	DisplayName string
	School      string
	GradeLevel  int
	TargetGPA   float64
	Bio         string
	UpdatedAt   time.Time
}
