package create_recurring_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	createRecurringSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_recurring_slot"
)

const (
	msgInvalidTemplateID  = "некорректный ID шаблона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные слота"
	msgNotFound           = "шаблон не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotOverlap        = "слот пересекается с существующим слотом"
	msgScheduleLimit      = "достигнут лимит записей расписания"
)

type Handler struct {
	useCase CreateRecurringSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/templates/{templateId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /templates/{id}/slots - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /templates/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, templateID))
	if err != nil {
		switch {
		case errors.Is(err, createRecurringSlot.ErrTemplateNotFound):
			h.logger.Warn("POST /templates/{id}/slots - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createRecurringSlot.ErrAccessDenied):
			h.logger.Warn("POST /templates/{id}/slots - Access denied: template_id=%d, user_id=%d", templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createRecurringSlot.ErrSlotOverlap):
			h.logger.Warn("POST /templates/{id}/slots - Slot overlap: template_id=%d, error=%v", templateID, err)
			handlers.RespondConflict(w, msgSlotOverlap)

		case errors.Is(err, createRecurringSlot.ErrScheduleLimitReached):
			h.logger.Warn("POST /templates/{id}/slots - Schedule limit reached: template_id=%d", templateID)
			handlers.RespondConflict(w, msgScheduleLimit)

		case errors.Is(err, createRecurringSlot.ErrInvalidInput):
			h.logger.Warn("POST /templates/{id}/slots - Invalid input: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /templates/{id}/slots - Failed to create slot: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates/{id}/slots - Slot created successfully: slot_id=%d, template_id=%d, user_id=%d",
		result.ID, templateID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
