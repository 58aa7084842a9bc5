package canvas

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// ListCourses - активные курсы пользователя из Canvas через кэш.
// Пока запись жива, повторные запросы в Canvas не ходят
func (s *serv) ListCourses(ctx context.Context, userID uuid.UUID) ([]model.CanvasCourse, error) {
	account, err := s.account(ctx, userID)
	if err != nil {
		return nil, err
	}

	v, err := s.cache.GetOrFetch(userID.String(), coursesEndpoint, s.cacheCfg.DefaultTTL(), func() (any, error) {
		return s.client.ListCourses(ctx, account.Domain, account.AccessToken)
	})
	if err != nil {
		return nil, err
	}

	return v.([]model.CanvasCourse), nil
}
