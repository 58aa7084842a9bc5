package session_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

const (
	table         = "sessions"
	colToken      = "token"
	colUserID     = "user_id"
	colCreatedAt  = "created_at"
	colExpiresAt  = "expires_at"
	colDeviceName = "device_name"
	colUserAgent  = "user_agent"
	colIP         = "ip"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateSession - создает сессию в БД.
// Принимает model.Session - (Token, UserID, ExpiresAt, DeviceName, UserAgent, IP)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colToken, colUserID, colExpiresAt, colDeviceName, colUserAgent, colIP).
		Values(session.Token, session.UserID, session.ExpiresAt, session.DeviceName, session.UserAgent, session.IP).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	// Запрос уходит в транзакцию из контекста, если она открыта
	_, err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetSessionByToken - возвращает сессию по её токену.
// Если сессии нет - возвращает model.ErrNotFound
func (r *repo) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	// Формируем запрос
	query := sq.Select(colToken, colUserID, colCreatedAt, colExpiresAt, colDeviceName, colUserAgent, colIP).
		From(table).
		Where(sq.Eq{colToken: token}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session model.Session
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.DeviceName,
		&session.UserAgent,
		&session.IP,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &session, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает токен сессии которую надо удалить
func (r *repo) DeleteSession(ctx context.Context, token string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colToken: token}).
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

// DeleteSessionsByUser - удаляет все сессии пользователя (разлогин со всех устройств)
func (r *repo) DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
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
