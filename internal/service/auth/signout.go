package auth

import (
	"context"
	"errors"

	"studyhub_backend/internal/model"
)

// Signout - закрывает сессию и сбрасывает кэш пользователя.
// Незнакомый токен ошибкой не считается, разлогин идемпотентен
func (s *serv) Signout(ctx context.Context, sessionToken string) error {
	session, err := s.sessionRepo.GetSessionByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return err
	}

	err = s.sessionRepo.DeleteSession(ctx, session.Token)
	if err != nil {
		return err
	}

	// Кэшированные данные пользователя больше не нужны
	s.cache.ClearOwner(session.UserID.String())

	return nil
}
