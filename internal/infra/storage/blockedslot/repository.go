package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PMC-SchedulingService/pkg/psqlbuilder"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var blockedSlotColumns = []string{
	"id",
	"practitioner_id",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"practitioner_id",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			slot.PractitionerID,
			slot.StartTime,
			slot.EndTime,
			slot.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.BlockedSlot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.PractitionerID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// GetOverlapping получает блокировки врача, пересекающиеся с окном
// [windowStart, windowEnd). Запрос ограничен окном оцениваемого дня.
func (r *Repository) GetOverlapping(ctx context.Context, practitionerID int64, window domain.TimeRange) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Полуинтервальное пересечение: start < windowEnd AND end > windowStart
	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		Where(squirrel.Lt{"start_time": window.End}).
		Where(squirrel.Gt{"end_time": window.Start}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.PractitionerID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlapping - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByPractitioner получает все блокировки врача начиная с указанного момента
func (r *Repository) GetByPractitioner(ctx context.Context, practitionerID int64, from *time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		OrderBy("start_time ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_time": *from})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.PractitionerID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPractitioner - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}
