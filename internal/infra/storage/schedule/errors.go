package schedule

import "errors"

var (
	// ErrSlotNotFound возвращается, когда повторяющийся слот не найден
	ErrSlotNotFound = errors.New("schedule.repository: recurring slot not found")

	// ErrExceptionNotFound возвращается, когда исключение не найдено
	ErrExceptionNotFound = errors.New("schedule.repository: date exception not found")

	// ErrDuplicateException возвращается при попытке создать второе исключение
	// на ту же дату шаблона (уникальный констрейнт template_id + exception_date)
	ErrDuplicateException = errors.New("schedule.repository: duplicate exception for date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
