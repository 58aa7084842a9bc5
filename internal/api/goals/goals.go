package goals

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/goals"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GoalService
}

type Handler struct {
	serv service.GoalService
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

	requestBody, err := req.Decode[dto.GoalRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	created, err := h.serv.CreateGoal(r.Context(), converter.ToGoalModel(requestBody, userID, uuid.Nil))
	if err != nil {
		log.Error().Err(err).Msg("create goal failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGoalResponse(*created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	list, err := h.serv.ListGoals(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list goals failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGoalsResponse(list))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	requestBody, err := req.Decode[dto.GoalRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	updated, err := h.serv.UpdateGoal(r.Context(), converter.ToGoalModel(requestBody, userID, goalID))
	if err != nil {
		log.Error().Err(err).Msg("update goal failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGoalResponse(*updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	err = h.serv.DeleteGoal(r.Context(), userID, goalID)
	if err != nil {
		log.Error().Err(err).Msg("delete goal failed")
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
