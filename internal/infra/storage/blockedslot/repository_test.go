package blockedslot

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/ptr"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO blocked_slots \(practitioner_id,start_time,end_time,reason\)`).
		WithArgs(int64(42), start, end, "staff meeting").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))

	slot, err := repo.Create(context.Background(), &domain.BlockedSlot{
		PractitionerID: 42,
		StartTime:      start,
		EndTime:        end,
		Reason:         ptr.Ptr("staff meeting"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), slot.ID)
	assert.Equal(t, createdAt, slot.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM blocked_slots").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(blockedSlotColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}

func TestGetOverlapping(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)

	// Полуинтервал: start < конец окна, end > начало окна
	mock.ExpectQuery(`SELECT .+ FROM blocked_slots WHERE practitioner_id = \$1 AND start_time < \$2 AND end_time > \$3 ORDER BY start_time ASC$`).
		WithArgs(int64(42),
			time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows(blockedSlotColumns).
			AddRow(int64(5), int64(42), start, end, nil, start))

	slots, err := repo.GetOverlapping(context.Background(), 42, domain.TimeRange{
		Start: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Nil(t, slots[0].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPractitioner_FromFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM blocked_slots WHERE practitioner_id = \$1 AND end_time >= \$2`).
		WithArgs(int64(42), from).
		WillReturnRows(sqlmock.NewRows(blockedSlotColumns))

	slots, err := repo.GetByPractitioner(context.Background(), 42, &from)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM blocked_slots WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM blocked_slots").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}
