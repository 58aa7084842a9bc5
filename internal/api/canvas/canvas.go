package canvas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/canvas"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CanvasService
}

type Handler struct {
	serv service.CanvasService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Connect - привязывает Canvas аккаунт по домену и персональному токену
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	requestBody, err := req.Decode[dto.ConnectRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	err = h.serv.ConnectAccount(r.Context(), converter.ToCanvasAccountModel(requestBody, userID))
	if err != nil {
		log.Error().Err(err).Msg("connect canvas account failed")
		resp.WriteError(w, err)
		return
	}

	account, err := h.serv.GetAccountStatus(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("read canvas account after connect failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCanvasAccountResponse(account))
}

// Account - статус привязки. Отсутствие привязки - не ошибка, а connected=false
func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	account, err := h.serv.GetAccountStatus(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			resp.WriteJSONResponse(w, http.StatusOK, converter.ToCanvasAccountResponse(nil))
			return
		}
		log.Error().Err(err).Msg("get canvas account failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCanvasAccountResponse(account))
}

func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	err := h.serv.DisconnectAccount(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("disconnect canvas account failed")
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Courses - курсы пользователя из Canvas, ответ кэшируется
func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	courses, err := h.serv.ListCourses(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list canvas courses failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCanvasCoursesResponse(courses))
}

// Assignments - предстоящие задания курса из Canvas, ответ кэшируется
func (h *Handler) Assignments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	assignments, err := h.serv.ListAssignments(r.Context(), userID, courseID)
	if err != nil {
		log.Error().Err(err).Msg("list canvas assignments failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCanvasAssignmentsResponse(assignments))
}
