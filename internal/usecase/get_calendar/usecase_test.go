package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
)

type mockRepo struct {
	record *domain.AvailabilityRecord
	err    error
}

func (m *mockRepo) GetByBusiness(ctx context.Context, businessID int64) (*domain.AvailabilityRecord, error) {
	return m.record, m.err
}

type mockStaffClient struct {
	exceptions []domain.StaffException
	err        error
}

func (m *mockStaffClient) ListByBusiness(ctx context.Context, businessID int64) ([]domain.StaffException, error) {
	return m.exceptions, m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(s string) time.Time {
	d, err := domain.ParseLocalDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUseCase_Execute(t *testing.T) {
	record := domain.BuildAvailabilityRecord(domain.DefaultWeeklySchedule(), []domain.Exception{
		{Date: "2026-09-15", IsAllDay: true},
	})
	staff := []domain.StaffException{
		{ID: 1, Date: "2026-09-16", Status: domain.StaffExceptionPending, CreatedAt: time.Now()},
	}

	uc := NewUseCase(&mockRepo{record: &record}, &mockStaffClient{exceptions: staff}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 42,
		From:       day("2026-09-14"),
		To:         day("2026-09-16"),
	})
	require.NoError(t, err)

	// Диапазон включает обе границы
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-09-14", resp.Days[0].Date)
	assert.Equal(t, "2026-09-16", resp.Days[2].Date)

	assert.Equal(t, domain.ClassificationNone, resp.Days[0].Classification)
	assert.Equal(t, domain.ClassificationBusiness, resp.Days[1].Classification)
	assert.Equal(t, domain.ClassificationStaffPending, resp.Days[2].Classification)

	assert.Equal(t, domain.ActionAddBusinessException, resp.Days[1].Action.Type)
	require.Equal(t, domain.ActionReviewStaffException, resp.Days[2].Action.Type)
	require.NotNil(t, resp.Days[2].Action.StaffExceptionID)
	assert.Equal(t, int64(1), *resp.Days[2].Action.StaffExceptionID)
}

func TestUseCase_Execute_NoRecordMeansNoBusinessExceptions(t *testing.T) {
	uc := NewUseCase(
		&mockRepo{err: availabilityRepo.ErrRecordNotFound},
		&mockStaffClient{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 42,
		From:       day("2026-09-15"),
		To:         day("2026-09-15"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, domain.ClassificationNone, resp.Days[0].Classification)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, &mockStaffClient{}, nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "non-positive business id",
			req:     &Request{BusinessID: 0, From: day("2026-09-15"), To: day("2026-09-16")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing dates",
			req:     &Request{BusinessID: 42},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "to before from",
			req:     &Request{BusinessID: 42, From: day("2026-09-16"), To: day("2026-09-15")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "range wider than a year",
			req:     &Request{BusinessID: 42, From: day("2026-01-01"), To: day("2027-06-01")},
			wantErr: ErrRangeTooWide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_StaffServiceFailure(t *testing.T) {
	uc := NewUseCase(
		&mockRepo{err: availabilityRepo.ErrRecordNotFound},
		&mockStaffClient{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 42,
		From:       day("2026-09-15"),
		To:         day("2026-09-16"),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
