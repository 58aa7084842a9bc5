package profile

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// GetProfile - возвращает профиль пользователя.
// Пока профиль ни разу не сохранялся - model.ErrNotFound
func (s *serv) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return s.profileRepo.GetProfile(ctx, userID)
}
