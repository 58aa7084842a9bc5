package academics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internal/cache"
	"studyhub_backend/internal/model"
)

type courseRepoStub struct {
	courses   []model.Course
	listCalls int
}

func (r *courseRepoStub) CreateCourse(_ context.Context, course *model.Course) (*model.Course, error) {
	created := *course
	created.ID = uuid.New()
	r.courses = append(r.courses, created)
	return &created, nil
}

func (r *courseRepoStub) ListCourses(_ context.Context, _ uuid.UUID) ([]model.Course, error) {
	r.listCalls++
	return r.courses, nil
}

func (r *courseRepoStub) UpdateCourse(_ context.Context, course *model.Course) (*model.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			r.courses[i] = *course
			return course, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *courseRepoStub) DeleteCourse(_ context.Context, _ uuid.UUID, courseID uuid.UUID) error {
	for i := range r.courses {
		if r.courses[i].ID == courseID {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

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
	r.profile = profile
	return profile, nil
}

type cacheCfgStub struct{}

func (cacheCfgStub) DefaultTTL() time.Duration    { return 5 * time.Minute }
func (cacheCfgStub) SummaryTTL() time.Duration    { return time.Minute }
func (cacheCfgStub) SweepInterval() time.Duration { return time.Minute }

func newTestAcademics(courseRepo *courseRepoStub, profileRepo *profileRepoStub) *serv {
	return &serv{
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		gradeScale:  testScale,
		cacheCfg:    cacheCfgStub{},
		cache:       cache.New(time.Hour),
	}
}

func TestGetSummary_CachedBetweenReads(t *testing.T) {
	userID := uuid.New()
	courseRepo := &courseRepoStub{courses: []model.Course{
		{UserID: userID, Name: "Calculus", Credits: 4, Grade: "A"},
	}}
	s := newTestAcademics(courseRepo, &profileRepoStub{})

	first, err := s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, first.GPA)

	second, err := s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Повторное чтение отдано из кэша
	assert.Equal(t, 1, courseRepo.listCalls)
}

func TestGetSummary_TargetGPA(t *testing.T) {
	testCases := []struct {
		name    string
		profile *model.Profile
		want    float64
	}{
		{
			name:    "no profile falls back to scale default",
			profile: nil,
			want:    3.5,
		},
		{
			name:    "profile without target falls back to scale default",
			profile: &model.Profile{TargetGPA: 0},
			want:    3.5,
		},
		{
			name:    "profile target wins",
			profile: &model.Profile{TargetGPA: 3.9},
			want:    3.9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestAcademics(&courseRepoStub{}, &profileRepoStub{profile: tc.profile})

			summary, err := s.GetSummary(context.Background(), uuid.New())
			require.NoError(t, err)

			assert.Equal(t, tc.want, summary.TargetGPA)
		})
	}
}

func TestCreateCourse_InvalidatesSummary(t *testing.T) {
	userID := uuid.New()
	courseRepo := &courseRepoStub{}
	s := newTestAcademics(courseRepo, &profileRepoStub{})

	summary, err := s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CourseCount)

	_, err = s.CreateCourse(context.Background(), &model.Course{
		UserID:  userID,
		Name:    "Calculus",
		Credits: 4,
		Grade:   "A",
	})
	require.NoError(t, err)

	// Запись сбросила сводку, следующее чтение видит новый курс
	summary, err = s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CourseCount)
	assert.Equal(t, 4.0, summary.GPA)
	assert.Equal(t, 2, courseRepo.listCalls)
}

func TestDeleteCourse_InvalidatesSummary(t *testing.T) {
	userID := uuid.New()
	courseRepo := &courseRepoStub{}
	s := newTestAcademics(courseRepo, &profileRepoStub{})

	created, err := s.CreateCourse(context.Background(), &model.Course{
		UserID:  userID,
		Name:    "Calculus",
		Credits: 4,
	})
	require.NoError(t, err)

	summary, err := s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CourseCount)

	err = s.DeleteCourse(context.Background(), userID, created.ID)
	require.NoError(t, err)

	summary, err = s.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CourseCount)
}

func TestCreateCourse_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		course model.Course
	}{
		{
			name:   "blank name",
			course: model.Course{Name: "   ", Credits: 3},
		},
		{
			name:   "zero credits",
			course: model.Course{Name: "Calculus", Credits: 0},
		},
		{
			name:   "credits above the limit",
			course: model.Course{Name: "Calculus", Credits: 31},
		},
		{
			name:   "grade missing from the scale",
			course: model.Course{Name: "Calculus", Credits: 3, Grade: "Z"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestAcademics(&courseRepoStub{}, &profileRepoStub{})

			_, err := s.CreateCourse(context.Background(), &tc.course)

			require.ErrorIs(t, err, model.ErrValidation)
		})
	}
}
