package canvas

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"studyhub_backend/internal/cache"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

// Вторые части составных ключей кэша, владелец подставляется отдельно
const (
	coursesEndpoint     = "canvas:courses"
	assignmentsEndpoint = "canvas:assignments:" // + courseID
)

// APIClient - то, что сервису нужно от HTTP клиента Canvas
type APIClient interface {
	ListCourses(ctx context.Context, domain string, accessToken string) ([]model.CanvasCourse, error)
	ListAssignments(ctx context.Context, domain string, accessToken string, courseID int64) ([]model.CanvasAssignment, error)
}

type serv struct {
	canvasRepo repository.CanvasAccountRepository
	client     APIClient
	cacheCfg   config.CacheConfig
	cache      *cache.Cache
}

func NewService(
	canvasRepo repository.CanvasAccountRepository,
	client APIClient,
	cacheCfg config.CacheConfig,
	cache *cache.Cache,
) service.CanvasService {
	return &serv{
		canvasRepo: canvasRepo,
		client:     client,
		cacheCfg:   cacheCfg,
		cache:      cache,
	}
}

// account - привязка Canvas аккаунта пользователя.
// Без привязки проксировать нечего - это ошибка запроса, а не 404
func (s *serv) account(ctx context.Context, userID uuid.UUID) (*model.CanvasAccount, error) {
	account, err := s.canvasRepo.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("canvas account is not connected: %w", model.ErrValidation)
		}
		return nil, err
	}

	return account, nil
}
