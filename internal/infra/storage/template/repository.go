package template

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// templateColumns колонки таблицы booking_templates в порядке сканирования
var templateColumns = []string{
	"id",
	"company_id",
	"owner_id",
	"name",
	"duration_minutes",
	"default_starting_hour",
	"default_ending_hour",
	"max_daily_bookings",
	"is_published",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с шаблонами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон бронирования
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, tpl *domain.BookingTemplate) (*domain.BookingTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_templates").
		Columns(
			"company_id",
			"owner_id",
			"name",
			"duration_minutes",
			"default_starting_hour",
			"default_ending_hour",
			"max_daily_bookings",
			"is_published",
		).
		Values(
			tpl.CompanyID,
			tpl.OwnerID,
			tpl.Name,
			tpl.DurationMinutes,
			tpl.DefaultStartingHour,
			tpl.DefaultEndingHour,
			tpl.MaxDailyBookings,
			tpl.IsPublished,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return tpl, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("booking_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.BookingTemplate
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.CompanyID,
		&tpl.OwnerID,
		&tpl.Name,
		&tpl.DurationMinutes,
		&tpl.DefaultStartingHour,
		&tpl.DefaultEndingHour,
		&tpl.MaxDailyBookings,
		&tpl.IsPublished,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}

// Update применяет частичное обновление шаблона
// Обновляются только поля, заданные в upd; updated_at ставится базой
func (r *Repository) Update(ctx context.Context, id int64, upd *domain.TemplateUpdate) (*domain.BookingTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("booking_templates").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.DurationMinutes != nil {
		builder = builder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.DefaultStartingHour != nil {
		builder = builder.Set("default_starting_hour", *upd.DefaultStartingHour)
	}
	if upd.DefaultEndingHour != nil {
		builder = builder.Set("default_ending_hour", *upd.DefaultEndingHour)
	}
	if upd.MaxDailyBookings != nil {
		builder = builder.Set("max_daily_bookings", *upd.MaxDailyBookings)
	}
	if upd.IsPublished != nil {
		builder = builder.Set("is_published", *upd.IsPublished)
	}

	query, args, err := builder.
		Suffix("RETURNING " + strings.Join(templateColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var tpl domain.BookingTemplate
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.CompanyID,
		&tpl.OwnerID,
		&tpl.Name,
		&tpl.DurationMinutes,
		&tpl.DefaultStartingHour,
		&tpl.DefaultEndingHour,
		&tpl.MaxDailyBookings,
		&tpl.IsPublished,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan template: %v", ErrScanRow, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}
