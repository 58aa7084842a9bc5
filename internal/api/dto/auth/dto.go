package auth

import (
	"time"

	"studyhub_backend/internal/api/dto/profile"
)

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`    // Минимум 8 символов
	DeviceName string `json:"device_name"` // Опциональная метка устройства
}

type SigninRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"device_name"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse - текущий пользователь. Профиль может быть еще не заполнен
type MeResponse struct {
	User    UserResponse             `json:"user"`
	Profile *profile.ProfileResponse `json:"profile,omitempty"`
}

// SessionResponse - ответ мягкой проверки сессии для бутстрапа фронтенда
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}
