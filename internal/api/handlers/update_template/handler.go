package update_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates"
)

const (
	msgInvalidTemplateID  = "некорректный ID шаблона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные шаблона"
	msgNotFound           = "шаблон не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /templates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /templates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), templateID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("PATCH /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("PATCH /templates/{id} - Access denied: template_id=%d, user_id=%d", templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("PATCH /templates/{id} - Invalid input: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /templates/{id} - Failed to update template: template_id=%d, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /templates/{id} - Template updated successfully: template_id=%d, user_id=%d",
		templateID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
