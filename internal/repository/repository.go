package repository

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internal/model"
)

// UserRepository - хранилище учётных записей.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// SessionRepository - хранилище сессий, токен выступает первичным ключом.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	ListCourses(ctx context.Context, userID uuid.UUID) ([]model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	DeleteCourse(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error
}

type EssayRepository interface {
	CreateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error)
	ListEssays(ctx context.Context, userID uuid.UUID) ([]model.Essay, error)
	GetEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) (*model.Essay, error)
	UpdateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error)
	DeleteEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error
}

type GoalRepository interface {
	CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error
}

type CanvasAccountRepository interface {
	UpsertAccount(ctx context.Context, account *model.CanvasAccount) error
	GetAccount(ctx context.Context, userID uuid.UUID) (*model.CanvasAccount, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
