package create_recurring_slot

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("template not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец шаблона
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotOverlap возвращается, когда слот пересекается с существующим
	ErrSlotOverlap = errors.New("slot overlaps with existing slot")

	// ErrScheduleLimitReached возвращается при превышении лимита записей расписания
	ErrScheduleLimitReached = errors.New("schedule records limit reached")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
