package model

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	TargetDate  *time.Time
	Progress    int // 0-100, 100 означает что цель достигнута
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
