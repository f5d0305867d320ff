package create_recurring_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
)

// UseCase use case для создания повторяющегося слота расписания
type UseCase struct {
	templateRepo TemplateRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	cache        WindowsCache
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	cache WindowsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		cache:        cache,
		logger:       logger,
	}
}

// Execute выполняет use case создания слота
// Использует сериализуемую транзакцию, чтобы два параллельных запроса
// не создали пересекающиеся слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringSlot: user=%d, template=%d, day=%d, %s-%s, available=%t",
		req.UserID, req.TemplateID, req.DayOfWeek, req.StartTime, req.EndTime, req.IsAvailable)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRecurringSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблон и проверяем владельца
	tpl, err := uc.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			uc.logger.Warn("CreateRecurringSlot: template id=%d not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		uc.logger.Error("CreateRecurringSlot: failed to get template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	if !tpl.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CreateRecurringSlot: user id=%d is not owner of template id=%d",
			req.UserID, req.TemplateID)
		return nil, ErrAccessDenied
	}

	candidate := domain.RecurringSlot{
		TemplateID:  req.TemplateID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}

	var created *domain.RecurringSlot

	// 3. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.scheduleRepo.GetSlotsByTemplate(txCtx, req.TemplateID)
		if err != nil {
			uc.logger.Error("CreateRecurringSlot: failed to get slots for template=%d: %v", req.TemplateID, err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}

		if err := validateScheduleLimit(len(existing)); err != nil {
			uc.logger.Warn("CreateRecurringSlot: %v", err)
			return err
		}

		if err := availability.ValidateSlot(candidate, existing); err != nil {
			var overlapErr *availability.OverlapError
			switch {
			case errors.As(err, &overlapErr):
				uc.logger.Warn("CreateRecurringSlot: overlap with slot id=%d: %v", overlapErr.ExistingID, err)
				return fmt.Errorf("%w: %v", ErrSlotOverlap, err)
			case errors.Is(err, availability.ErrInvalidInput):
				uc.logger.Warn("CreateRecurringSlot: invalid slot: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				uc.logger.Error("CreateRecurringSlot: slot validation error: %v", err)
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		created, err = uc.scheduleRepo.CreateSlot(txCtx, &candidate)
		if err != nil {
			uc.logger.Error("CreateRecurringSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Сбрасываем кэш окон шаблона
	if uc.cache != nil {
		uc.cache.InvalidateTemplate(req.TemplateID)
	}

	uc.logger.Info("CreateRecurringSlot: created slot id=%d for template=%d", created.ID, created.TemplateID)

	return &Response{
		ID:          created.ID,
		TemplateID:  created.TemplateID,
		DayOfWeek:   int(created.DayOfWeek),
		StartTime:   created.StartTime,
		EndTime:     created.EndTime,
		IsAvailable: created.IsAvailable,
		CreatedAt:   created.CreatedAt,
	}, nil
}
