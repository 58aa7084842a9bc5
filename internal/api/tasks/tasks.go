package tasks

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/tasks"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TaskService
}

type Handler struct {
	serv service.TaskService
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

	requestBody, err := req.Decode[dto.TaskRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	created, err := h.serv.CreateTask(r.Context(), converter.ToTaskModel(requestBody, userID, uuid.Nil))
	if err != nil {
		log.Error().Err(err).Msg("create task failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTaskResponse(*created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	list, err := h.serv.ListTasks(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list tasks failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTasksResponse(list))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	requestBody, err := req.Decode[dto.TaskRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	updated, err := h.serv.UpdateTask(r.Context(), converter.ToTaskModel(requestBody, userID, taskID))
	if err != nil {
		log.Error().Err(err).Msg("update task failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTaskResponse(*updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	err = h.serv.DeleteTask(r.Context(), userID, taskID)
	if err != nil {
		log.Error().Err(err).Msg("delete task failed")
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
