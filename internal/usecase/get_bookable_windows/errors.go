package get_bookable_windows

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден или скрыт
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataInconsistent возвращается при нарушении целостности данных расписания
	ErrDataInconsistent = errors.New("availability data inconsistent for this template")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
