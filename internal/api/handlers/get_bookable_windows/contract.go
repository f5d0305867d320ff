package get_bookable_windows

import (
	"context"

	getBookableWindows "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_bookable_windows"
)

type GetBookableWindowsUseCase interface {
	Execute(ctx context.Context, req *getBookableWindows.Request) (*getBookableWindows.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
