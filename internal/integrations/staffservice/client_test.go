package staffservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 2*time.Second, nopLogger{})
}

func TestClient_ListByBusiness(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/businesses/42/staff-exceptions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(StaffExceptionList{
			Exceptions: []domain.StaffException{
				{
					ID:            1,
					StaffName:     "Anna K",
					Date:          "2026-09-15",
					ExceptionType: domain.ExceptionTypeVacation,
					IsAllDay:      true,
					Status:        domain.StaffExceptionPending,
				},
			},
		})
	}))
	defer server.Close()

	exceptions, err := newTestClient(server.URL).ListByBusiness(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, exceptions, 1)
	assert.Equal(t, int64(1), exceptions[0].ID)
	assert.Equal(t, domain.StaffExceptionPending, exceptions[0].Status)
}

func TestClient_ListByBusiness_EmptyBodyYieldsEmptySlice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	exceptions, err := newTestClient(server.URL).ListByBusiness(context.Background(), 42)
	require.NoError(t, err)

	assert.NotNil(t, exceptions)
	assert.Empty(t, exceptions)
}

func TestClient_ListByBusiness_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListByBusiness(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Approve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/staff-exceptions/7/approve", r.URL.Path)

		var review ReviewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&review))
		assert.Equal(t, int64(100), review.ReviewerID)
		require.NotNil(t, review.AdminNotes)
		assert.Equal(t, "ok", *review.AdminNotes)

		now := time.Now()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.StaffException{
			ID:             7,
			Date:           "2026-09-15",
			Status:         domain.StaffExceptionApproved,
			ReviewedAt:     &now,
			ReviewedByName: ptr.Ptr("Admin"),
		})
	}))
	defer server.Close()

	exception, err := newTestClient(server.URL).Approve(context.Background(), 7, &ReviewRequest{
		ReviewerID: 100,
		AdminNotes: ptr.Ptr("ok"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StaffExceptionApproved, exception.Status)
	assert.NotNil(t, exception.ReviewedAt)
}

func TestClient_Deny_MapsErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrExceptionNotFound},
		{name: "already reviewed", status: http.StatusConflict, wantErr: ErrAlreadyReviewed},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Deny(context.Background(), 7, &ReviewRequest{ReviewerID: 100})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
