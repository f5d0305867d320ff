package delete_recurring_slot

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
	msgInvalidSlotID     = "некорректный ID слота"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgTemplateNotFound  = "шаблон не найден"
	msgSlotNotFound      = "слот не найден"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/templates/{templateId}/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), templateID, slotID, userID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTemplateNotFound):
			h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Slot not found: template_id=%d, slot_id=%d",
				templateID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /templates/{id}/slots/{slotId} - Access denied: template_id=%d, user_id=%d",
				templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /templates/{id}/slots/{slotId} - Failed to delete slot: template_id=%d, slot_id=%d, error=%v",
				templateID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /templates/{id}/slots/{slotId} - Slot deleted successfully: template_id=%d, slot_id=%d, user_id=%d",
		templateID, slotID, userID)
	w.WriteHeader(http.StatusNoContent)
}
