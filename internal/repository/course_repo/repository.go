package course_repo

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
	table        = "courses"
	colID        = "id"
	colUserID    = "user_id"
	colName      = "name"
	colCode      = "code"
	colCredits   = "credits"
	colGrade     = "grade"
	colTerm      = "term"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewCourseRepository(dbc *pgxpool.Pool) repository.CourseRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateCourse - создает курс в БД.
// Возвращает курс с заполненными ID и временными метками
func (r *repo) CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colName, colCode, colCredits, colGrade, colTerm).
		Values(course.UserID, course.Name, course.Code, course.Credits, course.Grade, course.Term).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	created := *course
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListCourses - возвращает все курсы пользователя, новые первыми
func (r *repo) ListCourses(ctx context.Context, userID uuid.UUID) ([]model.Course, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colName, colCode, colCredits, colGrade, colTerm, colCreatedAt, colUpdatedAt).
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

	courses := make([]model.Course, 0)
	for rows.Next() {
		var course model.Course
		err = rows.Scan(
			&course.ID,
			&course.UserID,
			&course.Name,
			&course.Code,
			&course.Credits,
			&course.Grade,
			&course.Term,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// UpdateCourse - обновляет курс пользователя.
// Если курса нет или он принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) UpdateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colName, course.Name).
		Set(colCode, course.Code).
		Set(colCredits, course.Credits).
		Set(colGrade, course.Grade).
		Set(colTerm, course.Term).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: course.ID, colUserID: course.UserID}).
		Suffix("RETURNING " + colCreatedAt + ", " + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *course
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteCourse - удаляет курс пользователя.
// Если курса нет или он принадлежит другому пользователю - возвращает model.ErrNotFound
func (r *repo) DeleteCourse(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: courseID, colUserID: userID}).
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
