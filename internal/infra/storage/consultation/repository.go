package consultation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PMC-SchedulingService/pkg/psqlbuilder"
)

var consultationColumns = []string{
	"id",
	"practitioner_id",
	"patient_id",
	"organization_id",
	"start_time",
	"end_time",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с консультациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория консультаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую консультацию.
// Если в контексте передана активная транзакция, использует её - создание
// брони выполняется только внутри serializable-транзакции вместе с
// повторной проверкой доступности слота (защита от check-then-act гонки).
func (r *Repository) Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("consultations").
		Columns(
			"practitioner_id",
			"patient_id",
			"organization_id",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			c.PractitionerID,
			c.PatientID,
			c.OrganizationID,
			c.StartTime,
			c.EndTime,
			c.Status,
			c.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает консультацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(consultationColumns...).
		From("consultations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanConsultation(row)
	if err == sql.ErrNoRows {
		return nil, ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consultation: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetActiveOverlapping получает активные консультации врача, пересекающиеся
// с окном [windowStart, windowEnd). Запрос всегда ограничен окном (день или
// неделя), чтобы не сканировать всю историю врача.
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания консультации
// блокирует пересекающиеся строки, чтобы два параллельных бронирования не
// прошли проверку доступности одновременно.
func (r *Repository) GetActiveOverlapping(ctx context.Context, practitionerID int64, window domain.TimeRange) ([]*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	// Полуинтервальное пересечение: start < windowEnd AND end > windowStart
	selectBuilder := psqlbuilder.Select(consultationColumns...).
		From("consultations").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		Where(squirrel.Lt{"start_time": window.End}).
		Where(squirrel.Gt{"end_time": window.Start}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// GetByPractitionerWithFilter получает консультации врача с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных
func (r *Repository) GetByPractitionerWithFilter(ctx context.Context, filter domain.PractitionerConsultationsFilter) ([]*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(consultationColumns...).
		From("consultations").
		Where(squirrel.Eq{"practitioner_id": filter.PractitionerID})

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitionerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitionerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// Cancel отменяет консультацию с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ConsultationStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("consultations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConsultationNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanConsultation(row scanner) (*domain.Consultation, error) {
	var c domain.Consultation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.PractitionerID,
		&c.PatientID,
		&c.OrganizationID,
		&c.StartTime,
		&c.EndTime,
		&c.Status,
		&c.Notes,
		&c.CancellationReason,
		&c.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// scanConsultations сканирует результаты запроса в слайс консультаций
func scanConsultations(rows *sql.Rows) ([]*domain.Consultation, error) {
	consultations := make([]*domain.Consultation, 0)

	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanConsultations - scan row: %v", ErrScanRow, err)
		}
		consultations = append(consultations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanConsultations - rows error: %v", ErrScanRow, err)
	}

	return consultations, nil
}
