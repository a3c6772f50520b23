package consultations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	consultationRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/consultation"
	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

type repoMock struct {
	consultation *domain.Consultation
	getErr       error

	list    []*domain.Consultation
	listErr error

	cancelErr    error
	cancelStatus domain.ConsultationStatus
	cancelReason string
	cancelCalls  int
}

func (m *repoMock) GetByID(_ context.Context, _ int64) (*domain.Consultation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.consultation, nil
}

func (m *repoMock) GetByPractitionerWithFilter(_ context.Context, _ domain.PractitionerConsultationsFilter) ([]*domain.Consultation, error) {
	return m.list, m.listErr
}

func (m *repoMock) Cancel(_ context.Context, _ int64, status domain.ConsultationStatus, reason string) error {
	m.cancelCalls++
	m.cancelStatus = status
	m.cancelReason = reason
	return m.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledConsultation() *domain.Consultation {
	return &domain.Consultation{
		ID:             1,
		PractitionerID: 42,
		PatientID:      11,
		OrganizationID: 7,
		StartTime:      time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC),
		Status:         domain.StatusScheduled,
	}
}

func TestGetByID_AccessRules(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "patient sees own consultation", userID: 11},
		{name: "practitioner sees own consultation", userID: 42},
		{name: "stranger is denied", userID: 99, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&repoMock{consultation: scheduledConsultation()}, nopLogger{})

			resp, err := svc.GetByID(context.Background(), 1, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&repoMock{getErr: consultationRepo.ErrConsultationNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 11)
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestGetPractitionerConsultations_OnlyOwner(t *testing.T) {
	svc := NewService(&repoMock{list: []*domain.Consultation{scheduledConsultation()}}, nopLogger{})

	// Чужой пользователь не видит расписание врача
	_, err := svc.GetPractitionerConsultations(context.Background(), &models.GetPractitionerConsultationsRequest{
		UserID:         11,
		PractitionerID: 42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetPractitionerConsultations(context.Background(), &models.GetPractitionerConsultationsRequest{
		UserID:         42,
		PractitionerID: 42,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Consultations, 1)
}

func TestCancel_StatusByRole(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		wantStatus domain.ConsultationStatus
		wantErr    error
	}{
		{name: "patient cancels", userID: 11, wantStatus: domain.StatusCancelledByPatient},
		{name: "practitioner cancels", userID: 42, wantStatus: domain.StatusCancelledByPractitioner},
		{name: "stranger is denied", userID: 99, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{consultation: scheduledConsultation()}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelConsultationRequest{
				UserID:             tt.userID,
				CancellationReason: "schedule conflict",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.cancelCalls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.cancelStatus)
			assert.Equal(t, "schedule conflict", repo.cancelReason)
		})
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	c := scheduledConsultation()
	c.Status = domain.StatusCancelledByPatient

	repo := &repoMock{consultation: c}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelConsultationRequest{UserID: 11})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&repoMock{getErr: consultationRepo.ErrConsultationNotFound}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelConsultationRequest{UserID: 11})
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}
