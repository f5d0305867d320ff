package get_template_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgNotFound          = "шаблон не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/templates/{templateId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /templates/{id}/schedule - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	requesterID := middleware.OptionalUserID(r)

	result, err := h.service.GetSchedule(r.Context(), templateID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id}/schedule - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /templates/{id}/schedule - Failed to get schedule: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /templates/{id}/schedule - Schedule retrieved successfully: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
