package essay_repo

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
	table        = "essays"
	colID        = "id"
	colUserID    = "user_id"
	colTitle     = "title"
	colPrompt    = "prompt"
	colContent   = "content"
	colStatus    = "status"
	colWordCount = "word_count"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewEssayRepository(dbc *pgxpool.Pool) repository.EssayRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateEssay - создает эссе в БД.
// Возвращает эссе с заполненными ID и временными метками
func (r *repo) CreateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colTitle, colPrompt, colContent, colStatus, colWordCount).
		Values(essay.UserID, essay.Title, essay.Prompt, essay.Content, essay.Status, essay.WordCount).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	created := *essay
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListEssays - возвращает все эссе пользователя, новые первыми
func (r *repo) ListEssays(ctx context.Context, userID uuid.UUID) ([]model.Essay, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTitle, colPrompt, colContent, colStatus, colWordCount, colCreatedAt, colUpdatedAt).
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

	essays := make([]model.Essay, 0)
	for rows.Next() {
		var essay model.Essay
		err = rows.Scan(
			&essay.ID,
			&essay.UserID,
			&essay.Title,
			&essay.Prompt,
			&essay.Content,
			&essay.Status,
			&essay.WordCount,
			&essay.CreatedAt,
			&essay.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		essays = append(essays, essay)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return essays, nil
}

// GetEssay - возвращает эссе пользователя по ID.
// Если эссе нет или оно принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) GetEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) (*model.Essay, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTitle, colPrompt, colContent, colStatus, colWordCount, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colID: essayID, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var essay model.Essay
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&essay.ID,
		&essay.UserID,
		&essay.Title,
		&essay.Prompt,
		&essay.Content,
		&essay.Status,
		&essay.WordCount,
		&essay.CreatedAt,
		&essay.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &essay, nil
}

// UpdateEssay - обновляет эссе пользователя.
// Если эссе нет или оно принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) UpdateEssay(ctx context.Context, essay *model.Essay) (*model.Essay, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTitle, essay.Title).
		Set(colPrompt, essay.Prompt).
		Set(colContent, essay.Content).
		Set(colStatus, essay.Status).
		Set(colWordCount, essay.WordCount).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: essay.ID, colUserID: essay.UserID}).
		Suffix("RETURNING " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *essay
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteEssay - удаляет эссе пользователя.
// Если эссе нет или оно принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) DeleteEssay(ctx context.Context, userID uuid.UUID, essayID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: essayID, colUserID: userID}).
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
