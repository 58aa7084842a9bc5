package auth

import (
	"context"
	"errors"

	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/pass"
)

func (s *serv) Signin(ctx context.Context, data model.SigninData) (*model.AuthData, error) {
	// Получение пользователя из бд по email
	user, err := s.userRepo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Не раскрываем, есть ли такой аккаунт
			return nil, model.ErrUnauthenticated
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, data.Password) {
		return nil, model.ErrUnauthenticated
	}

	// Открыть сессию
	session, err := s.newSession(user.ID, data.DeviceName, data.UserAgent, data.IP)
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		User:    user,
		Session: session,
	}, nil
}
