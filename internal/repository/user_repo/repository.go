package user_repo

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает пользователя с заполненными ID и created_at
func (r *repo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colEmail, colPasswordHash).
		Values(user.Name, strings.ToLower(user.Email), user.PasswordHash).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	created := *user
	created.Email = strings.ToLower(user.Email)

	// Запрос уходит в транзакцию из контекста, если она открыта
	err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetUserByEmail - возвращает модель пользователя по его email.
// Поиск регистронезависимый, email хранится в нижнем регистре
func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colEmail, colPasswordHash, colCreatedAt).
		From(table).
		Where(sq.Eq{colEmail: strings.ToLower(email)}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colEmail, colPasswordHash, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
