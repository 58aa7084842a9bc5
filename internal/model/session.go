package model

import (
	"time"

	"github.com/google/uuid"
)

// Session - серверная запись сессии. Токен уходит клиенту только в httpOnly cookie.
// Сессия валидна пока now < ExpiresAt, иначе удаляется при первом обращении
type Session struct {
	Token      string
	UserID     uuid.UUID
	CreatedAt  time.Time
	ExpiresAt  time.Time
	DeviceName string
	UserAgent  string
	IP         string
}
