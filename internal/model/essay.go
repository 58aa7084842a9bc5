package model

import (
	"time"

	"github.com/google/uuid"
)

// Статусы черновика эссе
const (
	EssayStatusDraft    = "draft"
	EssayStatusRevising = "revising"
	EssayStatusFinal    = "final"
)

type Essay struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Prompt    string
	Content   string
	Status    string
	WordCount int // Считается на сервере при каждой записи
	CreatedAt time.Time
	UpdatedAt time.Time
}
