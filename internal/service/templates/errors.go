package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	// или скрыт от запрашивающего (не опубликован и запрошен не владельцем)
	ErrTemplateNotFound = errors.New("templates: template not found")

	// ErrAccessDenied возвращается, когда шаблон пытается изменить не владелец
	ErrAccessDenied = errors.New("templates: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("templates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("templates: internal error")
)
