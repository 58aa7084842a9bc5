package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "studyhub_backend/internal/api/dto/auth"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
)

type authServiceStub struct {
	authData    *model.AuthData
	authErr     error
	user        *model.User
	validTokens map[string]uuid.UUID
	signouts    []string
}

func (s *authServiceStub) Signup(_ context.Context, _ model.SignupData) (*model.AuthData, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.authData, nil
}

func (s *authServiceStub) Signin(_ context.Context, _ model.SigninData) (*model.AuthData, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.authData, nil
}

func (s *authServiceStub) Signout(_ context.Context, token string) error {
	s.signouts = append(s.signouts, token)
	return nil
}

func (s *authServiceStub) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return s.validTokens[token], nil
}

func (s *authServiceStub) GetUser(_ context.Context, _ uuid.UUID) (*model.User, error) {
	if s.user == nil {
		return nil, model.ErrNotFound
	}
	return s.user, nil
}

type profileServiceStub struct {
	profile *model.Profile
}

func (s *profileServiceStub) GetProfile(_ context.Context, _ uuid.UUID) (*model.Profile, error) {
	if s.profile == nil {
		return nil, model.ErrNotFound
	}
	return s.profile, nil
}

func (s *profileServiceStub) SaveProfile(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	s.profile = profile
	return profile, nil
}

type sessionCfgStub struct {
	secure bool
}

func (c sessionCfgStub) TTL() time.Duration   { return time.Hour }
func (c sessionCfgStub) CookieDomain() string { return "" }
func (c sessionCfgStub) CookieSecure() bool   { return c.secure }

func newTestHandler(stub *authServiceStub, secure bool) *Handler {
	return newTestHandlerWithProfile(stub, &profileServiceStub{}, secure)
}

func newTestHandlerWithProfile(stub *authServiceStub, profiles *profileServiceStub, secure bool) *Handler {
	return NewHandler(HandlerDeps{
		Serv:        stub,
		ProfileServ: profiles,
		SessionCfg:  sessionCfgStub{secure: secure},
	})
}

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie is not set")
	return nil
}

func TestSignup(t *testing.T) {
	user := &model.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now()}
	stub := &authServiceStub{authData: &model.AuthData{
		User:    user,
		Session: &model.Session{Token: "fresh-token"},
	}}
	h := newTestHandler(stub, false)

	body := strings.NewReader(`{"name": "Alice", "email": "alice@example.com", "password": "correct horse"}`)
	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	c := findSessionCookie(t, rec)
	assert.Equal(t, "fresh-token", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge) // Срок cookie совпадает с TTL сессии
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)

	var got dto.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, user.ID.String(), got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestSignup_ProductionCookie(t *testing.T) {
	stub := &authServiceStub{authData: &model.AuthData{
		User:    &model.User{ID: uuid.New()},
		Session: &model.Session{Token: "fresh-token"},
	}}
	h := newTestHandler(stub, true)

	body := strings.NewReader(`{"name": "Alice", "email": "alice@example.com", "password": "correct horse"}`)
	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", body))

	c := findSessionCookie(t, rec)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestSignup_MalformedBody(t *testing.T) {
	h := newTestHandler(&authServiceStub{}, false)

	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"name":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignin_BadCredentials(t *testing.T) {
	h := newTestHandler(&authServiceStub{authErr: model.ErrUnauthenticated}, false)

	body := strings.NewReader(`{"email": "alice@example.com", "password": "wrong"}`)
	rec := httptest.NewRecorder()
	h.Signin(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signin", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignout(t *testing.T) {
	stub := &authServiceStub{}
	h := newTestHandler(stub, false)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "alive"})
	rec := httptest.NewRecorder()
	h.Signout(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"alive"}, stub.signouts)

	// Cookie затерта
	c := findSessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestSignout_WithoutCookie(t *testing.T) {
	stub := &authServiceStub{}
	h := newTestHandler(stub, false)

	rec := httptest.NewRecorder()
	h.Signout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil))

	// Разлогин идемпотентен и без сессии
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, stub.signouts)
}

func TestSession(t *testing.T) {
	userID := uuid.New()
	stub := &authServiceStub{
		user:        &model.User{ID: userID, Name: "Alice", Email: "alice@example.com"},
		validTokens: map[string]uuid.UUID{"alive": userID},
	}
	h := newTestHandler(stub, false)
	handler := middleware.NewAuth(stub).WithUser(http.HandlerFunc(h.Session))

	// Аноним получает 200 с authenticated=false, а не 401
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var anon dto.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&anon))
	assert.False(t, anon.Authenticated)
	assert.Nil(t, anon.User)

	// С валидной cookie приходит пользователь
	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "alive"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var authed dto.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&authed))
	assert.True(t, authed.Authenticated)
	require.NotNil(t, authed.User)
	assert.Equal(t, userID.String(), authed.User.ID)
}

func TestMe(t *testing.T) {
	userID := uuid.New()
	stub := &authServiceStub{
		user:        &model.User{ID: userID, Name: "Alice", Email: "alice@example.com"},
		validTokens: map[string]uuid.UUID{"alive": userID},
	}
	h := newTestHandler(stub, false)
	handler := middleware.NewAuth(stub).RequireAuth(http.HandlerFunc(h.Me))

	// Без cookie строгий middleware не пускает
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "alive"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.MeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, userID.String(), got.User.ID)

	// Профиль еще не заполнен
	assert.Nil(t, got.Profile)
}

func TestMe_WithProfile(t *testing.T) {
	userID := uuid.New()
	stub := &authServiceStub{
		user:        &model.User{ID: userID, Name: "Alice", Email: "alice@example.com"},
		validTokens: map[string]uuid.UUID{"alive": userID},
	}
	profiles := &profileServiceStub{profile: &model.Profile{
		UserID:      userID,
		DisplayName: "Alice",
		School:      "Springfield High",
		GradeLevel:  11,
	}}
	h := newTestHandlerWithProfile(stub, profiles, false)
	handler := middleware.NewAuth(stub).RequireAuth(http.HandlerFunc(h.Me))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "alive"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.MeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Springfield High", got.Profile.School)
	assert.Equal(t, 11, got.Profile.GradeLevel)
}
