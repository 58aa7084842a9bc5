package canvas_repo

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
	table          = "canvas_accounts"
	colUserID      = "user_id"
	colDomain      = "domain"
	colAccessToken = "access_token"
	colConnectedAt = "connected_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewCanvasAccountRepository(dbc *pgxpool.Pool) repository.CanvasAccountRepository {
	return &repo{
		dbc: dbc,
	}
}

// UpsertAccount - сохраняет привязку Canvas аккаунта.
// Повторная привязка заменяет домен и токен, connected_at сбрасывается
func (r *repo) UpsertAccount(ctx context.Context, account *model.CanvasAccount) error {
	// Формируем запрос на вставку, при конфликте заменяем привязку
	query := sq.Insert(table).
		Columns(colUserID, colDomain, colAccessToken).
		Values(account.UserID, account.Domain, account.AccessToken).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colDomain + " = EXCLUDED." + colDomain + ", " +
			colAccessToken + " = EXCLUDED." + colAccessToken + ", " +
			colConnectedAt + " = NOW()").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetAccount - возвращает привязку Canvas аккаунта пользователя.
// Если привязки нет - возвращает model.ErrNotFound
func (r *repo) GetAccount(ctx context.Context, userID uuid.UUID) (*model.CanvasAccount, error) {
	// Формируем запрос
	query := sq.Select(colUserID, colDomain, colAccessToken, colConnectedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var account model.CanvasAccount
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&account.UserID, &account.Domain, &account.AccessToken, &account.ConnectedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &account, nil
}

// DeleteAccount - удаляет привязку Canvas аккаунта.
// Если привязки нет - возвращает model.ErrNotFound
func (r *repo) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
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
