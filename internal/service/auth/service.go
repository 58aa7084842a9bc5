package auth

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"studyhub_backend/internal/cache"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/token"
)

const minPasswordLen = 8

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionCfg  config.SessionConfig
	cache       *cache.Cache
	now         func() time.Time
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sessionCfg config.SessionConfig,
	cache *cache.Cache,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionCfg:  sessionCfg,
		cache:       cache,
		now:         time.Now,
	}
}

// newSession - генерирует токен и собирает модель сессии со сроком жизни из конфигурации
func (s *serv) newSession(userID uuid.UUID, deviceName string, userAgent string, ip string) (*model.Session, error) {
	sessionToken, err := token.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	return &model.Session{
		Token:      sessionToken,
		UserID:     userID,
		ExpiresAt:  s.now().Add(s.sessionCfg.TTL()),
		DeviceName: deviceName,
		UserAgent:  userAgent,
		IP:         ip,
	}, nil
}
