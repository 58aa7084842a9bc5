package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internal/cache"
	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/pass"
)

// fakeTxManager - выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[string]*model.User // ключ - email в нижнем регистре
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[string]*model.User)}
}

func (r *userRepoStub) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	created := *user
	created.ID = uuid.New()
	created.Email = strings.ToLower(created.Email)
	created.CreatedAt = time.Now()
	r.users[created.Email] = &created
	return &created, nil
}

func (r *userRepoStub) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrNotFound
	}
	return user, nil
}

func (r *userRepoStub) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, model.ErrNotFound
}

type sessionRepoStub struct {
	sessions  map[string]*model.Session
	getErr    error
	deleteErr error
	deleted   []string
}

func newSessionRepoStub() *sessionRepoStub {
	return &sessionRepoStub{sessions: make(map[string]*model.Session)}
}

func (r *sessionRepoStub) CreateSession(_ context.Context, session *model.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *sessionRepoStub) GetSessionByToken(_ context.Context, token string) (*model.Session, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	session, ok := r.sessions[token]
	if !ok {
		return nil, model.ErrNotFound
	}
	return session, nil
}

func (r *sessionRepoStub) DeleteSession(_ context.Context, token string) error {
	r.deleted = append(r.deleted, token)
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.sessions, token)
	return nil
}

func (r *sessionRepoStub) DeleteSessionsByUser(_ context.Context, userID uuid.UUID) error {
	for token, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

type sessionCfgStub struct {
	ttl time.Duration
}

func (c sessionCfgStub) TTL() time.Duration   { return c.ttl }
func (c sessionCfgStub) CookieDomain() string { return "" }
func (c sessionCfgStub) CookieSecure() bool   { return false }

func newTestService(userRepo *userRepoStub, sessionRepo *sessionRepoStub) (*serv, *time.Time) {
	current := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	s := &serv{
		txManager:   fakeTxManager{},
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionCfg:  sessionCfgStub{ttl: time.Hour},
		cache:       cache.New(time.Hour),
		now:         func() time.Time { return current },
	}
	return s, &current
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	storeErr := errors.New("connection reset")

	testCases := []struct {
		name        string
		token       string
		seed        bool
		expiresIn   time.Duration
		getErr      error
		deleteErr   error
		wantID      uuid.UUID
		wantErr     error
		wantDeleted bool
	}{
		{
			name:   "empty token",
			token:  "",
			wantID: uuid.Nil,
		},
		{
			name:   "unknown token",
			token:  "no-such-token",
			wantID: uuid.Nil,
		},
		{
			name:      "valid session",
			token:     "alive",
			seed:      true,
			expiresIn: time.Hour,
			wantID:    userID,
		},
		{
			name:        "expired session",
			token:       "stale",
			seed:        true,
			expiresIn:   -time.Minute,
			wantID:      uuid.Nil,
			wantDeleted: true,
		},
		{
			name:        "session expiring right now",
			token:       "boundary",
			seed:        true,
			expiresIn:   0,
			wantID:      uuid.Nil,
			wantDeleted: true,
		},
		{
			name:        "expired session survives failed cleanup",
			token:       "stale",
			seed:        true,
			expiresIn:   -time.Minute,
			deleteErr:   storeErr,
			wantID:      uuid.Nil,
			wantDeleted: true,
		},
		{
			name:    "store error closes access",
			token:   "alive",
			getErr:  storeErr,
			wantID:  uuid.Nil,
			wantErr: storeErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sessionRepo := newSessionRepoStub()
			sessionRepo.getErr = tc.getErr
			sessionRepo.deleteErr = tc.deleteErr

			s, now := newTestService(newUserRepoStub(), sessionRepo)
			if tc.seed {
				sessionRepo.sessions[tc.token] = &model.Session{
					Token:     tc.token,
					UserID:    userID,
					ExpiresAt: now.Add(tc.expiresIn),
				}
			}

			gotID, err := s.ValidateToken(context.Background(), tc.token)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantID, gotID)

			if tc.wantDeleted {
				assert.Contains(t, sessionRepo.deleted, tc.token)
			} else {
				assert.Empty(t, sessionRepo.deleted)
			}
		})
	}
}

func TestSignup(t *testing.T) {
	userRepo := newUserRepoStub()
	sessionRepo := newSessionRepoStub()
	s, now := newTestService(userRepo, sessionRepo)

	authData, err := s.Signup(context.Background(), model.SignupData{
		Name:       "  Alice  ",
		Email:      "Alice@example.com",
		Password:   "correct horse",
		DeviceName: "laptop",
		UserAgent:  "go-test",
		IP:         "127.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", authData.User.Name)
	assert.Equal(t, "alice@example.com", authData.User.Email)
	assert.NotEqual(t, uuid.Nil, authData.User.ID)

	// Пароль хранится только в виде bcrypt-хэша
	assert.NotEqual(t, "correct horse", authData.User.PasswordHash)
	assert.True(t, pass.VerifyPassword(authData.User.PasswordHash, "correct horse"))

	// Сессия открыта сразу и живет ровно TTL
	require.NotNil(t, authData.Session)
	assert.NotEmpty(t, authData.Session.Token)
	assert.Equal(t, authData.User.ID, authData.Session.UserID)
	assert.Equal(t, now.Add(time.Hour), authData.Session.ExpiresAt)
	assert.Equal(t, "laptop", authData.Session.DeviceName)
	assert.Len(t, sessionRepo.sessions, 1)
}

func TestSignup_Validation(t *testing.T) {
	testCases := []struct {
		name string
		data model.SignupData
	}{
		{
			name: "blank name",
			data: model.SignupData{Name: "   ", Email: "a@b.c", Password: "long enough"},
		},
		{
			name: "email without at sign",
			data: model.SignupData{Name: "Bob", Email: "not-an-email", Password: "long enough"},
		},
		{
			name: "short password",
			data: model.SignupData{Name: "Bob", Email: "a@b.c", Password: "short"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestService(newUserRepoStub(), newSessionRepoStub())

			_, err := s.Signup(context.Background(), tc.data)

			require.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	s, _ := newTestService(newUserRepoStub(), newSessionRepoStub())

	data := model.SignupData{Name: "Alice", Email: "alice@example.com", Password: "correct horse"}

	_, err := s.Signup(context.Background(), data)
	require.NoError(t, err)

	// Регистр email не делает адрес новым
	data.Email = "ALICE@example.com"
	_, err = s.Signup(context.Background(), data)
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestSignin(t *testing.T) {
	userRepo := newUserRepoStub()
	sessionRepo := newSessionRepoStub()
	s, _ := newTestService(userRepo, sessionRepo)

	hash, err := pass.HashPassword("correct horse")
	require.NoError(t, err)
	seeded, err := userRepo.CreateUser(context.Background(), &model.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "success",
			email:    "alice@example.com",
			password: "correct horse",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct horse",
			wantErr:  model.ErrUnauthenticated,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "battery staple",
			wantErr:  model.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authData, err := s.Signin(context.Background(), model.SigninData{
				Email:    tc.email,
				Password: tc.password,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, seeded.ID, authData.User.ID)
			assert.NotEmpty(t, authData.Session.Token)
			assert.Contains(t, sessionRepo.sessions, authData.Session.Token)
		})
	}
}

func TestSignout(t *testing.T) {
	userID := uuid.New()
	sessionRepo := newSessionRepoStub()
	s, now := newTestService(newUserRepoStub(), sessionRepo)

	sessionRepo.sessions["alive"] = &model.Session{
		Token:     "alive",
		UserID:    userID,
		ExpiresAt: now.Add(time.Hour),
	}

	// Кэш этого пользователя должен сброситься, чужой - остаться
	_, err := s.cache.GetOrFetch(userID.String(), "courses", time.Minute, func() (any, error) { return "mine", nil })
	require.NoError(t, err)
	_, err = s.cache.GetOrFetch("other-user", "courses", time.Minute, func() (any, error) { return "theirs", nil })
	require.NoError(t, err)

	err = s.Signout(context.Background(), "alive")
	require.NoError(t, err)

	assert.NotContains(t, sessionRepo.sessions, "alive")
	assert.Equal(t, 1, s.cache.Len())
}

func TestSignout_UnknownTokenIsNoop(t *testing.T) {
	sessionRepo := newSessionRepoStub()
	s, _ := newTestService(newUserRepoStub(), sessionRepo)

	err := s.Signout(context.Background(), "never-issued")

	require.NoError(t, err)
	assert.Empty(t, sessionRepo.deleted)
}
