package canvas

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// ConnectAccount - сохраняет привязку Canvas аккаунта.
// Повторная привязка заменяет домен и токен
func (s *serv) ConnectAccount(ctx context.Context, account *model.CanvasAccount) error {
	account.Domain = normalizeDomain(account.Domain)

	err := validateAccount(account)
	if err != nil {
		return err
	}

	err = s.canvasRepo.UpsertAccount(ctx, account)
	if err != nil {
		return err
	}

	// Данные могли прийти с другого аккаунта - сбрасываем весь кэш пользователя,
	// включая задания по всем курсам
	s.cache.ClearOwner(account.UserID.String())

	return nil
}

func (s *serv) GetAccountStatus(ctx context.Context, userID uuid.UUID) (*model.CanvasAccount, error) {
	return s.canvasRepo.GetAccount(ctx, userID)
}

func (s *serv) DisconnectAccount(ctx context.Context, userID uuid.UUID) error {
	err := s.canvasRepo.DeleteAccount(ctx, userID)
	if err != nil {
		return err
	}

	s.cache.ClearOwner(userID.String())

	return nil
}

// normalizeDomain - приводит ввод вида https://school.instructure.com/ к голому хосту
func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(strings.ToLower(domain))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimSuffix(domain, "/")
}

func validateAccount(account *model.CanvasAccount) error {
	if account.Domain == "" || strings.ContainsAny(account.Domain, "/ ") {
		return fmt.Errorf("canvas domain is invalid: %w", model.ErrValidation)
	}
	if account.AccessToken == "" {
		return fmt.Errorf("canvas access token is required: %w", model.ErrValidation)
	}
	return nil
}
