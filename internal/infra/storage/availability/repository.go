package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PMC-SchedulingService/pkg/psqlbuilder"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с моделями доступности врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPractitioner получает модель доступности врача вместе со слотами
// недельного шаблона. Возвращает ErrModelNotFound, если модель не настроена.
func (r *Repository) GetByPractitioner(ctx context.Context, userID int64) (*domain.AvailabilityModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"organization_id",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("availability_models").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - build select query: %v", ErrBuildQuery, err)
	}

	var model domain.AvailabilityModel
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&model.ID,
		&model.UserID,
		&model.OrganizationID,
		&model.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - scan model: %v", ErrScanRow, err)
	}

	model.CreatedAt = createdAt.Time
	model.UpdatedAt = updatedAt.Time

	slots, err := r.getSlots(ctx, executor, model.ID)
	if err != nil {
		return nil, err
	}
	model.Slots = slots

	return &model, nil
}

// Upsert сохраняет модель доступности целиком (replace-all семантика):
// запись модели обновляется по user_id, все слоты недельного шаблона
// удаляются и вставляются заново. Вызывается внутри serializable-транзакции
// usecase-ом сохранения - частичные обновления слотов не поддерживаются
// намеренно, редактор всегда присылает полную модель.
func (r *Repository) Upsert(ctx context.Context, model *domain.AvailabilityModel) (*domain.AvailabilityModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_models").
		Columns(
			"user_id",
			"organization_id",
			"timezone",
		).
		Values(
			model.UserID,
			model.OrganizationID,
			model.Timezone,
		).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET timezone = EXCLUDED.timezone, organization_id = EXCLUDED.organization_id, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&model.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	model.CreatedAt = createdAt.Time
	model.UpdatedAt = updatedAt.Time

	// Replace-all: сначала удаляем все слоты модели
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_slots").
		Where(squirrel.Eq{"availability_model_id": model.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build delete slots query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - delete slots: %v", ErrExecQuery, err)
	}

	if len(model.Slots) == 0 {
		return model, nil
	}

	// Вставляем новый набор слотов одним запросом
	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns(
			"availability_model_id",
			"day_of_week",
			"start_time",
			"end_time",
		)

	for _, slot := range model.Slots {
		insertBuilder = insertBuilder.Values(
			model.ID,
			slot.DayOfWeek,
			slot.StartTime,
			slot.EndTime,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert slots query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - insert slots: %v", ErrExecQuery, err)
	}

	slots, err := r.getSlots(ctx, executor, model.ID)
	if err != nil {
		return nil, err
	}
	model.Slots = slots

	return model, nil
}

// getSlots загружает слоты недельного шаблона модели
func (r *Repository) getSlots(ctx context.Context, executor DBExecutor, modelID int64) ([]domain.AvailabilitySlot, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("availability_slots").
		Where(squirrel.Eq{"availability_model_id": modelID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
