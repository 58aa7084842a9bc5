package canvas

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// ListAssignments - предстоящие задания курса из Canvas через кэш.
// У каждого курса своя запись в кэше
func (s *serv) ListAssignments(ctx context.Context, userID uuid.UUID, courseID int64) ([]model.CanvasAssignment, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("course id must be positive: %w", model.ErrValidation)
	}

	account, err := s.account(ctx, userID)
	if err != nil {
		return nil, err
	}

	endpoint := assignmentsEndpoint + strconv.FormatInt(courseID, 10)

	v, err := s.cache.GetOrFetch(userID.String(), endpoint, s.cacheCfg.DefaultTTL(), func() (any, error) {
		return s.client.ListAssignments(ctx, account.Domain, account.AccessToken, courseID)
	})
	if err != nil {
		return nil, err
	}

	return v.([]model.CanvasAssignment), nil
}
