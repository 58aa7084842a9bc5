package profile_repo

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
	table          = "profiles"
	colUserID      = "user_id"
	colDisplayName = "display_name"
	colSchool      = "school"
	colGradeLevel  = "grade_level"
	colTargetGPA   = "target_gpa"
	colBio         = "bio"
	colUpdatedAt   = "updated_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewProfileRepository(dbc *pgxpool.Pool) repository.ProfileRepository {
	return &repo{
		dbc: dbc,
	}
}

// GetProfile - возвращает профиль пользователя.
// Если профиль ещё не заполнялся - возвращает model.ErrNotFound
func (r *repo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	// Формируем запрос
	query := sq.Select(colUserID, colDisplayName, colSchool, colGradeLevel, colTargetGPA, colBio, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var profile model.Profile
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.School,
		&profile.GradeLevel,
		&profile.TargetGPA,
		&profile.Bio,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// UpsertProfile - вставляет профиль или обновляет существующий.
// Возвращает сохранённый профиль с актуальным updated_at
func (r *repo) UpsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	// Формируем запрос на вставку, при конфликте обновляем все поля
	query := sq.Insert(table).
		Columns(colUserID, colDisplayName, colSchool, colGradeLevel, colTargetGPA, colBio).
		Values(profile.UserID, profile.DisplayName, profile.School, profile.GradeLevel, profile.TargetGPA, profile.Bio).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colDisplayName + " = EXCLUDED." + colDisplayName + ", " +
			colSchool + " = EXCLUDED." + colSchool + ", " +
			colGradeLevel + " = EXCLUDED." + colGradeLevel + ", " +
			colTargetGPA + " = EXCLUDED." + colTargetGPA + ", " +
			colBio + " = EXCLUDED." + colBio + ", " +
			colUpdatedAt + " = NOW() " +
			"RETURNING " + colUserID + ", " + colDisplayName + ", " + colSchool + ", " +
			colGradeLevel + ", " + colTargetGPA + ", " + colBio + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var saved model.Profile
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&saved.UserID,
		&saved.DisplayName,
		&saved.School,
		&saved.GradeLevel,
		&saved.TargetGPA,
		&saved.Bio,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
