package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"studyhub_backend/internal/model"
)

// ValidateToken - проверяет сессионный токен по хранилищу сессий.
// Возвращает uuid.Nil без ошибки, если токен неизвестен или сессия истекла.
// Ошибка хранилища тоже означает отказ в доступе - доступ никогда не
// выдается "на всякий случай"
func (s *serv) ValidateToken(ctx context.Context, sessionToken string) (uuid.UUID, error) {
	if sessionToken == "" {
		return uuid.Nil, nil
	}

	session, err := s.sessionRepo.GetSessionByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	// Сессия живет пока now < expires_at
	if !s.now().Before(session.ExpiresAt) {
		// Просроченную запись подчищаем сразу, неудача не мешает отказу
		err = s.sessionRepo.DeleteSession(ctx, session.Token)
		if err != nil {
			log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return uuid.Nil, nil
	}

	return session.UserID, nil
}
