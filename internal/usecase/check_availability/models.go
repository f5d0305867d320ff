package check_availability

import "time"

// Request модель запроса на проверку доступности даты
type Request struct {
	TemplateID  int64      // ID шаблона бронирования
	RequesterID *int64     // ID пользователя из заголовка (nil для анонимных запросов)
	Date        time.Time  // Календарная дата без времени
}

// Response модель ответа с решением о доступности
type Response struct {
	TemplateID int64
	Date       time.Time
	Available  bool
}
