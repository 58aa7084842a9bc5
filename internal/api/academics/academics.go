package academics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dto "studyhub_backend/internal/api/dto/academics"
	"studyhub_backend/internal/converter"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/req"
	"studyhub_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AcademicsService
}

type Handler struct {
	serv service.AcademicsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	requestBody, err := req.Decode[dto.CourseRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	created, err := h.serv.CreateCourse(r.Context(), converter.ToCourseModel(requestBody, userID, uuid.Nil))
	if err != nil {
		log.Error().Err(err).Msg("create course failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCourseResponse(*created))
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	courses, err := h.serv.ListCourses(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list courses failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCoursesResponse(courses))
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	requestBody, err := req.Decode[dto.CourseRequest](r.Body)
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	updated, err := h.serv.UpdateCourse(r.Context(), converter.ToCourseModel(requestBody, userID, courseID))
	if err != nil {
		log.Error().Err(err).Msg("update course failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCourseResponse(*updated))
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		resp.WriteError(w, model.ErrValidation)
		return
	}

	err = h.serv.DeleteCourse(r.Context(), userID, courseID)
	if err != nil {
		log.Error().Err(err).Msg("delete course failed")
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary - сводка по успеваемости, отдается через кэш
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, model.ErrUnauthenticated)
		return
	}

	summary, err := h.serv.GetSummary(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("academic summary failed")
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSummaryResponse(summary))
}
