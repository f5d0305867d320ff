package delete_date_exception

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
	msgInvalidExceptionID = "некорректный ID исключения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTemplateNotFound   = "шаблон не найден"
	msgExceptionNotFound  = "исключение не найдено"
	msgForbidden          = "доступ запрещен"
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

// Handle DELETE /api/v1/templates/{templateId}/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteException(r.Context(), templateID, exceptionID, userID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTemplateNotFound):
			h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Template not found: template_id=%d",
				templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, schedule.ErrExceptionNotFound):
			h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Exception not found: template_id=%d, exception_id=%d",
				templateID, exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /templates/{id}/exceptions/{exceptionId} - Access denied: template_id=%d, user_id=%d",
				templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /templates/{id}/exceptions/{exceptionId} - Failed to delete exception: template_id=%d, exception_id=%d, error=%v",
				templateID, exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /templates/{id}/exceptions/{exceptionId} - Exception deleted successfully: template_id=%d, exception_id=%d, user_id=%d",
		templateID, exceptionID, userID)
	w.WriteHeader(http.StatusNoContent)
}
