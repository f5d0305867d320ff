package get_bookable_windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
)

// UseCase use case для расчета бронируемых окон на дату
type UseCase struct {
	templateRepo TemplateRepository
	scheduleRepo ScheduleRepository
	cache        WindowsCache // может быть nil, если кэш выключен в конфиге
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	scheduleRepo ScheduleRepository,
	cache WindowsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute выполняет use case расчета окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableWindows: template=%d, date=%s",
		req.TemplateID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableWindows: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблон
	tpl, err := uc.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			uc.logger.Warn("GetBookableWindows: template id=%d not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		uc.logger.Error("GetBookableWindows: failed to get template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 3. Неопубликованный шаблон виден только владельцу
	if !tpl.IsPublished && (req.RequesterID == nil || !tpl.IsOwnedBy(*req.RequesterID)) {
		uc.logger.Warn("GetBookableWindows: template id=%d is not published, hiding from requester", req.TemplateID)
		return nil, ErrTemplateNotFound
	}

	// 4. Пробуем отдать окна из кэша
	if uc.cache != nil {
		if windows, ok := uc.cache.Get(req.TemplateID, req.Date); ok {
			return &Response{
				TemplateID:      req.TemplateID,
				Date:            req.Date,
				DurationMinutes: tpl.DurationMinutes,
				Windows:         windows,
			}, nil
		}
	}

	// 5. Получаем расписание шаблона
	slots, err := uc.scheduleRepo.GetSlotsByTemplate(ctx, req.TemplateID)
	if err != nil {
		uc.logger.Error("GetBookableWindows: failed to get slots for template=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	exceptions, err := uc.scheduleRepo.GetExceptionsByTemplate(ctx, req.TemplateID)
	if err != nil {
		uc.logger.Error("GetBookableWindows: failed to get exceptions for template=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 6. Рассчитываем окна движком
	windows, err := availability.BookableWindows(tpl, slots, exceptions, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDataIntegrity):
			uc.logger.Error("GetBookableWindows: data integrity violation for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrDataInconsistent, err)
		case errors.Is(err, availability.ErrInvalidInput):
			uc.logger.Warn("GetBookableWindows: invalid input for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("GetBookableWindows: engine error for template=%d: %v", req.TemplateID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if uc.cache != nil {
		uc.cache.Put(req.TemplateID, req.Date, windows)
	}

	uc.logger.Info("GetBookableWindows: template=%d date=%s windows=%d",
		req.TemplateID, req.Date.Format(domain.DateFormat), len(windows))

	return &Response{
		TemplateID:      req.TemplateID,
		Date:            req.Date,
		DurationMinutes: tpl.DurationMinutes,
		Windows:         windows,
	}, nil
}
