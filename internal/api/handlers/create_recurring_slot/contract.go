package create_recurring_slot

import (
	"context"

	createRecurringSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_recurring_slot"
)

type CreateRecurringSlotUseCase interface {
	Execute(ctx context.Context, req *createRecurringSlot.Request) (*createRecurringSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
