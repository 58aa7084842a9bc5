package essays

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/essays"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.EssayService
}

type Handler struct {
	serv service.EssayService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	requestBody, err := req.Decode[dto.EssayRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	created, err := h.serv.CreateEssay(r.Context(), converter.ToEssayModel(requestBody, userID, uuid.Nil))
	if err != nil {
		log.Error().Err(err).Msg("create essay failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToEssayResponse(*created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	list, err := h.serv.ListEssays(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list essays failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEssaysResponse(list))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	essayID, err := uuid.Parse(chi.URLParam(r, "essayID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	essay, err := h.serv.GetEssay(r.Context(), userID, essayID)
	if err != nil {
		log.Error().Err(err).Msg("get essay failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEssayResponse(*essay))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	essayID, err := uuid.Parse(chi.URLParam(r, "essayID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	requestBody, err := req.Decode[dto.EssayRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	updated, err := h.serv.UpdateEssay(r.Context(), converter.ToEssayModel(requestBody, userID, essayID))
	if err != nil {
		log.Error().Err(err).Msg("update essay failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEssayResponse(*updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	essayID, err := uuid.Parse(chi.URLParam(r, "essayID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	err = h.serv.DeleteEssay(r.Context(), userID, essayID)
	if err != nil {
		log.Error().Err(err).Msg("delete essay failed")
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
