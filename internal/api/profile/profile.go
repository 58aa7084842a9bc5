package profile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/profile"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ProfileService
}

type Handler struct {
	serv service.ProfileService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get - профиль текущего пользователя, 404 пока профиль не сохранялся
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	p, err := h.serv.GetProfile(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("get profile failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(p))
}

// Save - создает или целиком заменяет профиль
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	requestBody, err := req.Decode[dto.ProfileRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	saved, err := h.serv.SaveProfile(r.Context(), converter.ToProfileModel(requestBody, userID))
	if err != nil {
		log.Error().Err(err).Msg("save profile failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(saved))
}
