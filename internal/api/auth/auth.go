package auth

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/auth"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv        service.AuthService
	ProfileServ service.ProfileService
	SessionCfg  config.SessionConfig
}

type Handler struct {
	serv        service.AuthService
	profileServ service.ProfileService
	sessionCfg  config.SessionConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		profileServ: deps.ProfileServ,
		sessionCfg:  deps.SessionCfg,
	}
}

// Signup - создает пользователя, открывает сессию
// и выставляет session_token cookie
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.SignupRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	data, err := h.serv.Signup(r.Context(), converter.ToSignupData(requestBody, r.UserAgent(), clientIP(r)))
	if err != nil {
		log.Error().Err(err).Msg("signup failed")
		resp.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, data.Session)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToUserResponse(data.User))
}

// Signin - открывает сессию по email и паролю
// и выставляет session_token cookie
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.SigninRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	data, err := h.serv.Signin(r.Context(), converter.ToSigninData(requestBody, r.UserAgent(), clientIP(r)))
	if err != nil {
		log.Error().Err(err).Msg("signin failed")
		resp.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, data.Session)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(data.User))
}

// Signout - закрывает сессию и затирает cookie.
// Без cookie тоже отвечает 204 - разлогин идемпотентен
func (h *Handler) Signout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(middleware.SessionCookie)
	if err == nil {
		err = h.serv.Signout(r.Context(), c.Value)
		if err != nil {
			log.Error().Err(err).Msg("signout failed")
			resp.WriteError(w, err)
			return
		}
	}

	h.clearSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// Me - текущий пользователь с профилем, ручка за строгим middleware
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	user, err := h.serv.GetUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("get current user failed")
		resp.WriteError(w, err)
		return
	}

	// До первого сохранения профиля нет - это не ошибка
	userProfile, err := h.profileServ.GetProfile(r.Context(), userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Error().Err(err).Msg("get current user profile failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMeResponse(user, userProfile))
}

// Session - мягкая проверка для бутстрапа фронтенда.
// Анонимному клиенту отвечает 200 с authenticated=false, а не 401
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	user, err := h.serv.GetUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("get session user failed")
		resp.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	userResp := converter.ToUserResponse(user)
	resp.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		User:          &userResp,
	})
}

// setSessionCookie - выставляет session_token cookie на весь срок жизни сессии.
// В production cookie уходит только по https и со строгим SameSite
func (h *Handler) setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, h.sessionCookie(session.Token, int(h.sessionCfg.TTL().Seconds())))
}

// clearSessionCookie - затирает session_token cookie
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.sessionCookie("", -1))
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	}
	if h.sessionCfg.CookieSecure() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}
	if domain := h.sessionCfg.CookieDomain(); domain != "" {
		cookie.Domain = domain
	}

	return cookie
}

// clientIP - адрес клиента с учетом прокси
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
