package task_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

const (
	table        = "tasks"
	colID        = "id"
	colUserID    = "user_id"
	colTitle     = "title"
	colNotes     = "notes"
	colDueDate   = "due_date"
	colPriority  = "priority"
	colCompleted = "completed"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewTaskRepository(dbc *pgxpool.Pool) repository.TaskRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateTask - создает задачу в БД.
// Возвращает задачу с заполненными ID и временными метками
func (r *repo) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colTitle, colNotes, colDueDate, colPriority, colCompleted).
		Values(task.UserID, task.Title, task.Notes, task.DueDate, task.Priority, task.Completed).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	created := *task
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListTasks - возвращает все задачи пользователя.
// Сортировка: сначала по дедлайну, задачи без дедлайна в конце
func (r *repo) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTitle, colNotes, colDueDate, colPriority, colCompleted, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colDueDate+" ASC NULLS LAST", colCreatedAt+" DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var task model.Task
		err = rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Notes,
			&task.DueDate,
			&task.Priority,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask - обновляет задачу пользователя.
// Если задачи нет или она принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTitle, task.Title).
		Set(colNotes, task.Notes).
		Set(colDueDate, task.DueDate).
		Set(colPriority, task.Priority).
		Set(colCompleted, task.Completed).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: task.ID, colUserID: task.UserID}).
		Suffix("RETURNING " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *task
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteTask - удаляет задачу пользователя.
// Если задачи нет или она принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: taskID, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
