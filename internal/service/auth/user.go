package auth

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// GetUser - возвращает пользователя по ID для ручек /me и /session
func (s *serv) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
