package schedule

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("schedule: template not found")

	// ErrSlotNotFound возвращается, когда слот не найден в шаблоне
	ErrSlotNotFound = errors.New("schedule: recurring slot not found")

	// ErrExceptionNotFound возвращается, когда исключение не найдено в шаблоне
	ErrExceptionNotFound = errors.New("schedule: date exception not found")

	// ErrDuplicateException возвращается при попытке создать второе исключение
	// на ту же дату
	ErrDuplicateException = errors.New("schedule: exception already exists for this date")

	// ErrAccessDenied возвращается, когда расписание меняет не владелец шаблона
	ErrAccessDenied = errors.New("schedule: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
