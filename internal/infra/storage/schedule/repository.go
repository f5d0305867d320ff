package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального констрейнта
const uniqueViolationCode = "23505"

// Repository репозиторий расписания шаблона: повторяющиеся слоты и исключения дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateSlot создает повторяющийся слот
// Обновления in-place нет - изменение слота это delete + create
func (r *Repository) CreateSlot(ctx context.Context, slot *domain.RecurringSlot) (*domain.RecurringSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_slots").
		Columns(
			"template_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			slot.TemplateID,
			int(slot.DayOfWeek),
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetSlotsByTemplate получает все повторяющиеся слоты шаблона
// Порядок фиксированный: день недели, время начала, время конца, id
func (r *Repository) GetSlotsByTemplate(ctx context.Context, templateID int64) ([]domain.RecurringSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"template_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
	).
		From("recurring_slots").
		Where(squirrel.Eq{"template_id": templateID}).
		OrderBy("day_of_week ASC", "start_time ASC", "end_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByTemplate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByTemplate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.RecurringSlot, 0)

	for rows.Next() {
		var slot domain.RecurringSlot
		var dayOfWeek int
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.TemplateID,
			&dayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetSlotsByTemplate - scan row: %v", ErrScanRow, err)
		}

		slot.DayOfWeek = time.Weekday(dayOfWeek)
		slot.CreatedAt = createdAt.Time

		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByTemplate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// DeleteSlot удаляет повторяющийся слот шаблона
func (r *Repository) DeleteSlot(ctx context.Context, templateID, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("recurring_slots").
		Where(squirrel.Eq{"id": slotID, "template_id": templateID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// CreateException создает исключение на дату
// Дубликат по (template_id, exception_date) ловится уникальным констрейнтом
// и возвращается как ErrDuplicateException
func (r *Repository) CreateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_exceptions").
		Columns(
			"template_id",
			"exception_date",
			"is_available",
		).
		Values(
			exc.TemplateID,
			exc.ExceptionDate,
			exc.IsAvailable,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateException - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateException
		}
		return nil, fmt.Errorf("%w: CreateException - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time

	return exc, nil
}

// GetExceptionsByTemplate получает все исключения шаблона, отсортированные по дате
func (r *Repository) GetExceptionsByTemplate(ctx context.Context, templateID int64) ([]domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"template_id",
		"exception_date",
		"is_available",
		"created_at",
	).
		From("date_exceptions").
		Where(squirrel.Eq{"template_id": templateID}).
		OrderBy("exception_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByTemplate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByTemplate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.DateException, 0)

	for rows.Next() {
		var exc domain.DateException
		var createdAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.TemplateID,
			&exc.ExceptionDate,
			&exc.IsAvailable,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetExceptionsByTemplate - scan row: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time

		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByTemplate - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// DeleteException удаляет исключение шаблона
func (r *Repository) DeleteException(ctx context.Context, templateID, exceptionID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_exceptions").
		Where(squirrel.Eq{"id": exceptionID, "template_id": templateID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteException - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteException - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteException - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}
