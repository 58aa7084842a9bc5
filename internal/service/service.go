package service

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

type AuthService interface {
	Signup(ctx context.Context, data model.SignupData) (*model.AuthData, error)
	Signin(ctx context.Context, data model.SigninData) (*model.AuthData, error)
	Signout(ctx context.Context, token string) error
	// ValidateToken - uuid.Nil без ошибки означает невалидный или просроченный токен
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	SaveProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type AcademicsService interface {
	CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	ListCourses(ctx context.Context, userID uuid.UUID) ([]model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	DeleteCourse(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error
	GetSummary(ctx context.Context, userID uuid.UUID) (*model.AcademicSummary, error)
}

type EssayService interface {
	CreateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error)
	ListEssays(ctx context.Context, userID uuid.UUID) ([]model.Essay, error)
	GetEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) (*model.Essay, error)
	UpdateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error)
	DeleteEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) error
}

type TaskService interface {
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error
}

type GoalService interface {
	CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error
}

type CanvasService interface {
	ConnectAccount(ctx context.Context, account *model.CanvasAccount) error
	GetAccountStatus(ctx context.Context, userID uuid.UUID) (*model.CanvasAccount, error)
	DisconnectAccount(ctx context.Context, userID uuid.UUID) error
	ListCourses(ctx context.Context, userID uuid.UUID) ([]model.CanvasCourse, error)
	ListAssignments(ctx context.Context, userID uuid.UUID, courseID int64) ([]model.CanvasAssignment, error)
}
