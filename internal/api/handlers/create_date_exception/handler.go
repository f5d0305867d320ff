package create_date_exception

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
	msgInvalidTemplateID  = "некорректный ID шаблона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "шаблон не найден"
	msgForbidden          = "доступ запрещен"
	msgDuplicate          = "исключение на эту дату уже существует"
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

// Handle POST /api/v1/templates/{templateId}/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /templates/{id}/exceptions - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /templates/{id}/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates/{id}/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, templateID)
	if err != nil {
		h.logger.Warn("POST /templates/{id}/exceptions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateException(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTemplateNotFound):
			h.logger.Warn("POST /templates/{id}/exceptions - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /templates/{id}/exceptions - Access denied: template_id=%d, user_id=%d",
				templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrDuplicateException):
			h.logger.Warn("POST /templates/{id}/exceptions - Duplicate exception: template_id=%d, date=%s",
				templateID, req.Date)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /templates/{id}/exceptions - Invalid input: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /templates/{id}/exceptions - Failed to create exception: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates/{id}/exceptions - Exception created successfully: exception_id=%d, template_id=%d, user_id=%d",
		result.ID, templateID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
