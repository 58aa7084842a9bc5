package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internal/model"
)

type taskRepoStub struct {
	tasks map[uuid.UUID]*model.Task
}

func newTaskRepoStub() *taskRepoStub {
	return &taskRepoStub{tasks: make(map[uuid.UUID]*model.Task)}
}

func (r *taskRepoStub) CreateTask(_ context.Context, task *model.Task) (*model.Task, error) {
	created := *task
	created.ID = uuid.New()
	r.tasks[created.ID] = &created
	return &created, nil
}

func (r *taskRepoStub) ListTasks(_ context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (r *taskRepoStub) UpdateTask(_ context.Context, task *model.Task) (*model.Task, error) {
	stored, ok := r.tasks[task.ID]
	if !ok || stored.UserID != task.UserID {
		return nil, model.ErrNotFound
	}
	updated := *task
	r.tasks[task.ID] = &updated
	return &updated, nil
}

func (r *taskRepoStub) DeleteTask(_ context.Context, userID uuid.UUID, taskID uuid.UUID) error {
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return model.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func TestCreateTask_DefaultsPriority(t *testing.T) {
	s := NewService(newTaskRepoStub())

	created, err := s.CreateTask(context.Background(), &model.Task{
		UserID: uuid.New(),
		Title:  "Finish problem set",
	})
	require.NoError(t, err)

	assert.Equal(t, model.TaskPriorityMedium, created.Priority)
	assert.False(t, created.Completed)
}

func TestCreateTask_Validation(t *testing.T) {
	testCases := []struct {
		name string
		task model.Task
	}{
		{
			name: "blank title",
			task: model.Task{Title: "  "},
		},
		{
			name: "unknown priority",
			task: model.Task{Title: "Finish problem set", Priority: "urgent"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(newTaskRepoStub())

			_, err := s.CreateTask(context.Background(), &tc.task)

			require.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestUpdateTask_CompletesTask(t *testing.T) {
	repo := newTaskRepoStub()
	s := NewService(repo)
	userID := uuid.New()
	due := time.Now().Add(24 * time.Hour)

	created, err := s.CreateTask(context.Background(), &model.Task{
		UserID:  userID,
		Title:   "Finish problem set",
		DueDate: &due,
	})
	require.NoError(t, err)

	created.Completed = true

	updated, err := s.UpdateTask(context.Background(), created)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestDeleteTask_ForeignTaskNotFound(t *testing.T) {
	repo := newTaskRepoStub()
	s := NewService(repo)

	created, err := s.CreateTask(context.Background(), &model.Task{
		UserID: uuid.New(),
		Title:  "Finish problem set",
	})
	require.NoError(t, err)

	err = s.DeleteTask(context.Background(), uuid.New(), created.ID)

	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Len(t, repo.tasks, 1)
}
