package book_consultation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	staffClient "github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
	checkAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/check_availability"
)

// Моки зависимостей

type consultationRepoMock struct {
	created *domain.Consultation
	err     error
	calls   int
}

func (m *consultationRepoMock) Create(_ context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	created := *c
	created.ID = 100
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

type checkerMock struct {
	available bool
	err       error
}

func (m *checkerMock) Execute(_ context.Context, _ *checkAvailability.Request) (*checkAvailability.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &checkAvailability.Response{Available: m.available}, nil
}

type staffClientMock struct {
	practitioner *staffClient.Practitioner
	err          error
}

func (m *staffClientMock) GetPractitioner(_ context.Context, _ int64) (*staffClient.Practitioner, error) {
	return m.practitioner, m.err
}

// txManagerMock выполняет callback без настоящей транзакции
type txManagerMock struct {
	calls int
}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activePractitioner() *staffClient.Practitioner {
	return &staffClient.Practitioner{
		ID:             42,
		OrganizationID: 7,
		FullName:       "Dr. Anna Ivanova",
		IsActive:       true,
	}
}

func validRequest() *Request {
	return &Request{
		PractitionerID: 42,
		PatientID:      11,
		Start:          time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC),
		End:            time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC),
		CallerZone:     "UTC",
	}
}

func testNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *consultationRepoMock, checker *checkerMock, staff *staffClientMock, tx *txManagerMock) *UseCase {
	return &UseCase{
		consultationRepo: repo,
		checker:          checker,
		staffClient:      staff,
		txManager:        tx,
		timeProvider:     &fakeTimeProvider{now: testNow()},
		logger:           nopLogger{},
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &consultationRepoMock{}
	tx := &txManagerMock{}
	uc := newTestUseCase(repo, &checkerMock{available: true}, &staffClientMock{practitioner: activePractitioner()}, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(42), resp.PractitionerID)
	assert.Equal(t, int64(11), resp.PatientID)
	// Организация берется из профиля врача, не из запроса
	assert.Equal(t, int64(7), resp.OrganizationID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	// Проверка и создание выполняются внутри транзакции
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &consultationRepoMock{}
	uc := newTestUseCase(repo, &checkerMock{available: false}, &staffClientMock{practitioner: activePractitioner()}, &txManagerMock{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Консультация не создается при конфликте
	assert.Zero(t, repo.calls)
}

func TestExecute_PractitionerNotFound(t *testing.T) {
	uc := newTestUseCase(&consultationRepoMock{}, &checkerMock{available: true},
		&staffClientMock{err: staffClient.ErrPractitionerNotFound}, &txManagerMock{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestExecute_PractitionerInactive(t *testing.T) {
	practitioner := activePractitioner()
	practitioner.IsActive = false

	uc := newTestUseCase(&consultationRepoMock{}, &checkerMock{available: true},
		&staffClientMock{practitioner: practitioner}, &txManagerMock{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPractitionerInactive)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&consultationRepoMock{}, &checkerMock{available: true},
		&staffClientMock{practitioner: activePractitioner()}, &txManagerMock{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "start in the past",
			mutate:  func(r *Request) { r.Start = testNow().Add(-time.Hour); r.End = testNow() },
			wantErr: ErrStartInPast,
		},
		{
			name:    "inverted interval",
			mutate:  func(r *Request) { r.Start, r.End = r.End, r.Start },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "missing patient",
			mutate:  func(r *Request) { r.PatientID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing caller zone",
			mutate:  func(r *Request) { r.CallerZone = "" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CheckerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		checkerErr error
		wantErr    error
	}{
		{name: "invalid timezone", checkerErr: checkAvailability.ErrInvalidTimezone, wantErr: ErrInvalidTimezone},
		{name: "internal failure", checkerErr: checkAvailability.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&consultationRepoMock{}, &checkerMock{err: tt.checkerErr},
				&staffClientMock{practitioner: activePractitioner()}, &txManagerMock{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
