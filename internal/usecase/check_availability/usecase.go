package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
)

// UseCase use case для проверки доступности шаблона на дату
type UseCase struct {
	templateRepo TemplateRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: template=%d, date=%s",
		req.TemplateID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблон
	tpl, err := uc.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			uc.logger.Warn("CheckAvailability: template id=%d not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 3. Неопубликованный шаблон виден только владельцу
	if !tpl.IsPublished && (req.RequesterID == nil || !tpl.IsOwnedBy(*req.RequesterID)) {
		uc.logger.Warn("CheckAvailability: template id=%d is not published, hiding from requester", req.TemplateID)
		return nil, ErrTemplateNotFound
	}

	// 4. Получаем расписание шаблона
	slots, err := uc.scheduleRepo.GetSlotsByTemplate(ctx, req.TemplateID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get slots for template=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	exceptions, err := uc.scheduleRepo.GetExceptionsByTemplate(ctx, req.TemplateID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get exceptions for template=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность движком
	available, err := availability.IsDateAvailable(slots, exceptions, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDataIntegrity):
			// Целостность данных нарушена - наружу уходит ошибка,
			// а не произвольно выбранный результат
			uc.logger.Error("CheckAvailability: data integrity violation for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrDataInconsistent, err)
		case errors.Is(err, availability.ErrInvalidInput):
			uc.logger.Warn("CheckAvailability: invalid input for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CheckAvailability: engine error for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CheckAvailability: template=%d date=%s available=%t",
		req.TemplateID, req.Date.Format(domain.DateFormat), available)

	return &Response{
		TemplateID: req.TemplateID,
		Date:       req.Date,
		Available:  available,
	}, nil
}
