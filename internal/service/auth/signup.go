package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/pass"
)

func (s *serv) Signup(ctx context.Context, data model.SignupData) (*model.AuthData, error) {
	err := validateSignup(data)
	if err != nil {
		return nil, err
	}

	// Проверяем что email свободен
	_, err = s.userRepo.GetUserByEmail(ctx, data.Email)
	if err == nil {
		return nil, fmt.Errorf("email already registered: %w", model.ErrValidation)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(data.Name),
		Email:        data.Email,
		PasswordHash: passwordHash,
	}

	var session *model.Session

	// Начало транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Открыть сессию
		session, err = s.newSession(user.ID, data.DeviceName, data.UserAgent, data.IP)
		if err != nil {
			return err
		}

		err = s.sessionRepo.CreateSession(ctx, session)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		User:    user,
		Session: session,
	}, nil
}

func validateSignup(data model.SignupData) error {
	if strings.TrimSpace(data.Name) == "" {
		return fmt.Errorf("name is required: %w", model.ErrValidation)
	}
	if !strings.Contains(data.Email, "@") {
		return fmt.Errorf("email is invalid: %w", model.ErrValidation)
	}
	if len(data.Password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, model.ErrValidation)
	}
	return nil
}
