package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// Моки репозиториев

type availabilityRepoMock struct {
	model *domain.AvailabilityModel
	err   error
}

func (m *availabilityRepoMock) GetByPractitioner(_ context.Context, _ int64) (*domain.AvailabilityModel, error) {
	return m.model, m.err
}

type blockedSlotRepoMock struct {
	slots []*domain.BlockedSlot
	err   error
}

func (m *blockedSlotRepoMock) GetOverlapping(_ context.Context, _ int64, _ domain.TimeRange) ([]*domain.BlockedSlot, error) {
	return m.slots, m.err
}

type consultationRepoMock struct {
	consultations []*domain.Consultation
	err           error
}

func (m *consultationRepoMock) GetActiveOverlapping(_ context.Context, _ int64, _ domain.TimeRange) ([]*domain.Consultation, error) {
	return m.consultations, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

// mondayModel шаблон: понедельник 09:00-17:00, America/New_York
func mondayModel(t *testing.T) *domain.AvailabilityModel {
	t.Helper()
	return &domain.AvailabilityModel{
		ID:             1,
		UserID:         42,
		OrganizationID: 7,
		Timezone:       "America/New_York",
		Slots: []domain.AvailabilitySlot{
			{ID: 1, DayOfWeek: 1, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "17:00")},
		},
	}
}

// nyInstant момент местного времени Нью-Йорка в понедельник 2026-03-02
func nyInstant(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2026, 3, 2, hour, minute, 0, 0, loc)
}

func newUseCase(avail *availabilityRepoMock, blocked *blockedSlotRepoMock, cons *consultationRepoMock) *UseCase {
	return NewUseCase(avail, blocked, cons, nopLogger{})
}

func TestExecute_ConsultationConflict(t *testing.T) {
	// Понедельник 09:00-17:00, консультация 10:00-10:30
	consultation := &domain.Consultation{
		ID:             1,
		PractitionerID: 42,
		StartTime:      nyInstant(t, 10, 0),
		EndTime:        nyInstant(t, 10, 30),
		Status:         domain.StatusScheduled,
	}

	uc := newUseCase(
		&availabilityRepoMock{model: mondayModel(t)},
		&blockedSlotRepoMock{},
		&consultationRepoMock{consultations: []*domain.Consultation{consultation}},
	)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{
			name:      "overlapping candidate rejected",
			start:     nyInstant(t, 10, 15),
			end:       nyInstant(t, 10, 45),
			available: false,
		},
		{
			name:      "back-to-back candidate bookable",
			start:     nyInstant(t, 10, 30),
			end:       nyInstant(t, 11, 0),
			available: true,
		},
		{
			name:      "candidate right before is bookable",
			start:     nyInstant(t, 9, 30),
			end:       nyInstant(t, 10, 0),
			available: true,
		},
		{
			name:      "exact duplicate rejected",
			start:     nyInstant(t, 10, 0),
			end:       nyInstant(t, 10, 30),
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				PractitionerID: 42,
				Start:          tt.start,
				End:            tt.end,
				CallerZone:     "America/New_York",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, resp.Available)
		})
	}
}

func TestExecute_OutsideRecurringTemplate(t *testing.T) {
	uc := newUseCase(
		&availabilityRepoMock{model: mondayModel(t)},
		&blockedSlotRepoMock{},
		&consultationRepoMock{},
	)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "before opening", start: nyInstant(t, 8, 0), end: nyInstant(t, 8, 30)},
		{name: "straddles opening", start: nyInstant(t, 8, 30), end: nyInstant(t, 9, 30)},
		{name: "straddles closing", start: nyInstant(t, 16, 30), end: nyInstant(t, 17, 30)},
		{
			name: "tuesday has no template",
			// вторник 2026-03-03
			start: nyInstant(t, 10, 0).AddDate(0, 0, 1),
			end:   nyInstant(t, 11, 0).AddDate(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				PractitionerID: 42,
				Start:          tt.start,
				End:            tt.end,
				CallerZone:     "America/New_York",
			})
			require.NoError(t, err)
			assert.False(t, resp.Available)
		})
	}
}

func TestExecute_CleanContainmentIsAvailable(t *testing.T) {
	uc := newUseCase(
		&availabilityRepoMock{model: mondayModel(t)},
		&blockedSlotRepoMock{},
		&consultationRepoMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          nyInstant(t, 9, 0),
		End:            nyInstant(t, 10, 0),
		CallerZone:     "America/New_York",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CallerZoneDoesNotChangeResult(t *testing.T) {
	// Тот же момент времени, выраженный в зоне пациента из Лондона
	uc := newUseCase(
		&availabilityRepoMock{model: mondayModel(t)},
		&blockedSlotRepoMock{},
		&consultationRepoMock{},
	)

	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          nyInstant(t, 10, 0).In(london),
		End:            nyInstant(t, 11, 0).In(london),
		CallerZone:     "Europe/London",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_BlockedSlotConflict(t *testing.T) {
	blocked := &domain.BlockedSlot{
		ID:             1,
		PractitionerID: 42,
		StartTime:      nyInstant(t, 13, 0),
		EndTime:        nyInstant(t, 14, 0),
	}

	uc := newUseCase(
		&availabilityRepoMock{model: mondayModel(t)},
		&blockedSlotRepoMock{slots: []*domain.BlockedSlot{blocked}},
		&consultationRepoMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          nyInstant(t, 13, 30),
		End:            nyInstant(t, 14, 30),
		CallerZone:     "America/New_York",
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_MissingModelMeansUnavailable(t *testing.T) {
	uc := newUseCase(
		&availabilityRepoMock{err: availabilityRepo.ErrModelNotFound},
		&blockedSlotRepoMock{},
		&consultationRepoMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          nyInstant(t, 10, 0),
		End:            nyInstant(t, 11, 0),
		CallerZone:     "America/New_York",
	})

	// Отсутствие модели - валидное состояние, не ошибка
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&availabilityRepoMock{}, &blockedSlotRepoMock{}, &consultationRepoMock{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "zero-length interval",
			req: &Request{
				PractitionerID: 42,
				Start:          nyInstant(t, 10, 0),
				End:            nyInstant(t, 10, 0),
				CallerZone:     "America/New_York",
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "inverted interval",
			req: &Request{
				PractitionerID: 42,
				Start:          nyInstant(t, 11, 0),
				End:            nyInstant(t, 10, 0),
				CallerZone:     "America/New_York",
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "missing practitioner",
			req: &Request{
				Start:      nyInstant(t, 10, 0),
				End:        nyInstant(t, 11, 0),
				CallerZone: "America/New_York",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown caller zone fails loudly",
			req: &Request{
				PractitionerID: 42,
				Start:          nyInstant(t, 10, 0),
				End:            nyInstant(t, 11, 0),
				CallerZone:     "Mars/Olympus_Mons",
			},
			wantErr: ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CorruptStoredTimezone(t *testing.T) {
	model := mondayModel(t)
	model.Timezone = "Not/AZone"

	uc := newUseCase(&availabilityRepoMock{model: model}, &blockedSlotRepoMock{}, &consultationRepoMock{})

	_, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          nyInstant(t, 10, 0),
		End:            nyInstant(t, 11, 0),
		CallerZone:     "UTC",
	})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestExecute_DSTSpringForwardGapDoesNotFail(t *testing.T) {
	// Воскресенье 2026-03-08 - день перехода на летнее время
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	model := &domain.AvailabilityModel{
		ID:       1,
		UserID:   42,
		Timezone: "America/New_York",
		Slots: []domain.AvailabilitySlot{
			// Шаблон начинается в несуществующее локальное время
			{ID: 1, DayOfWeek: 7, StartTime: mustTime(t, "02:30"), EndTime: mustTime(t, "10:00")},
		},
	}

	uc := newUseCase(&availabilityRepoMock{model: model}, &blockedSlotRepoMock{}, &consultationRepoMock{})

	resp, err := uc.Execute(context.Background(), &Request{
		PractitionerID: 42,
		Start:          time.Date(2026, 3, 8, 8, 0, 0, 0, loc),
		End:            time.Date(2026, 3, 8, 9, 0, 0, 0, loc),
		CallerZone:     "America/New_York",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}
