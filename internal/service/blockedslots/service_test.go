package blockedslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	blockedSlotRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/blockedslot"
	"github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots/models"
)

type repoMock struct {
	slot      *domain.BlockedSlot
	getErr    error
	list      []*domain.BlockedSlot
	deleteErr error

	createCalls int
	deleteCalls int
}

func (m *repoMock) Create(_ context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	m.createCalls++
	created := *slot
	created.ID = 5
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &created, nil
}

func (m *repoMock) GetByID(_ context.Context, _ int64) (*domain.BlockedSlot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.slot, nil
}

func (m *repoMock) GetByPractitioner(_ context.Context, _ int64, _ *time.Time) ([]*domain.BlockedSlot, error) {
	return m.list, nil
}

func (m *repoMock) Delete(_ context.Context, _ int64) error {
	m.deleteCalls++
	return m.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func createRequest() *models.CreateBlockedSlotRequest {
	return &models.CreateBlockedSlotRequest{
		UserID:         42,
		PractitionerID: 42,
		Start:          time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
		End:            time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	repo := &repoMock{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(42), resp.PractitionerID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreate_OnlyOwnSchedule(t *testing.T) {
	repo := &repoMock{}
	svc := NewService(repo, nopLogger{})

	req := createRequest()
	req.UserID = 11

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.createCalls)
}

func TestCreate_InvalidInterval(t *testing.T) {
	svc := NewService(&repoMock{}, nopLogger{})

	req := createRequest()
	req.End = req.Start

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByPractitioner_OnlyOwner(t *testing.T) {
	svc := NewService(&repoMock{list: []*domain.BlockedSlot{{ID: 5, PractitionerID: 42}}}, nopLogger{})

	_, err := svc.GetByPractitioner(context.Background(), &models.GetBlockedSlotsRequest{
		UserID:         11,
		PractitionerID: 42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetByPractitioner(context.Background(), &models.GetBlockedSlotsRequest{
		UserID:         42,
		PractitionerID: 42,
	})
	require.NoError(t, err)
	assert.Len(t, resp.BlockedSlots, 1)
}

func TestDelete(t *testing.T) {
	repo := &repoMock{slot: &domain.BlockedSlot{ID: 5, PractitionerID: 42}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 5, 42))
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDelete_NotOwner(t *testing.T) {
	repo := &repoMock{slot: &domain.BlockedSlot{ID: 5, PractitionerID: 42}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.deleteCalls)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&repoMock{getErr: blockedSlotRepo.ErrBlockedSlotNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}
