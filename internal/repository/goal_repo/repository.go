package goal_repo

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
	table          = "goals"
	colID          = "id"
	colUserID      = "user_id"
	colTitle       = "title"
	colDescription = "description"
	colTargetDate  = "target_date"
	colProgress    = "progress"
	colCreatedAt   = "created_at"
	colUpdatedAt   = "updated_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGoalRepository(dbc *pgxpool.Pool) repository.GoalRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateGoal - создает цель в БД.
// Возвращает цель с заполненными ID и временными метками
func (r *repo) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colTitle, colDescription, colTargetDate, colProgress).
		Values(goal.UserID, goal.Title, goal.Description, goal.TargetDate, goal.Progress).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	created := *goal
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListGoals - возвращает все цели пользователя, новые первыми
func (r *repo) ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTitle, colDescription, colTargetDate, colProgress, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
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

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var goal model.Goal
		err = rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Title,
			&goal.Description,
			&goal.TargetDate,
			&goal.Progress,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

// UpdateGoal - обновляет цель пользователя.
// Если цели нет или она принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTitle, goal.Title).
		Set(colDescription, goal.Description).
		Set(colTargetDate, goal.TargetDate).
		Set(colProgress, goal.Progress).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: goal.ID, colUserID: goal.UserID}).
		Suffix("RETURNING " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *goal
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteGoal - удаляет цель пользователя.
// Если цели нет или она принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: goalID, colUserID: userID}).
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
