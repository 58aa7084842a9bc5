package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internal/model"
)

type profileRepoStub struct {
	profile *model.Profile
}

func (r *profileRepoStub) GetProfile(_ context.Context, _ uuid.UUID) (*model.Profile, error) {
	if r.profile == nil {
		return nil, model.ErrNotFound
	}
	return r.profile, nil
}

func (r *profileRepoStub) UpsertProfile(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	saved := *profile
	r.profile = &saved
	return &saved, nil
}

func TestSaveProfile(t *testing.T) {
	repo := &profileRepoStub{}
	s := NewService(repo)
	userID := uuid.New()

	saved, err := s.SaveProfile(context.Background(), &model.Profile{
		UserID:      userID,
		DisplayName: "Alice",
		School:      "Springfield High",
		GradeLevel:  11,
		TargetGPA:   3.8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Springfield High", saved.School)

	// Повторное сохранение перезаписывает профиль
	saved, err = s.SaveProfile(context.Background(), &model.Profile{
		UserID:     userID,
		GradeLevel: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, saved.GradeLevel)

	got, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.GradeLevel)
}

func TestSaveProfile_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		profile model.Profile
		wantErr bool
	}{
		{
			name:    "negative grade level",
			profile: model.Profile{GradeLevel: -1},
			wantErr: true,
		},
		{
			name:    "grade level above school range",
			profile: model.Profile{GradeLevel: 13},
			wantErr: true,
		},
		{
			name:    "negative target gpa",
			profile: model.Profile{TargetGPA: -0.1},
			wantErr: true,
		},
		{
			name:    "target gpa above the scale",
			profile: model.Profile{TargetGPA: 4.1},
			wantErr: true,
		},
		{
			name:    "upper bounds are allowed",
			profile: model.Profile{GradeLevel: 12, TargetGPA: 4.0},
		},
		{
			name:    "empty profile is allowed",
			profile: model.Profile{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(&profileRepoStub{})

			_, err := s.SaveProfile(context.Background(), &tc.profile)

			if tc.wantErr {
				require.ErrorIs(t, err, model.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetProfile_NotFilledYet(t *testing.T) {
	s := NewService(&profileRepoStub{})

	_, err := s.GetProfile(context.Background(), uuid.New())

	require.ErrorIs(t, err, model.ErrNotFound)
}
