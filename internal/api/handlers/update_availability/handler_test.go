package update_availability

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type mockService struct {
	saveFn func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error)
}

func (m *mockService) Save(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
	return m.saveFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(svc *mockService) *mux.Router {
	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/businesses/{businessId}/availability", handler.Handle).Methods(http.MethodPut)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body interface{}, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/businesses/42/availability", bytes.NewReader(payload))
	if withUser {
		req.Header.Set("X-User-ID", "100")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &mockService{
		saveFn: func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
			assert.Equal(t, int64(42), req.BusinessID)
			return &models.AvailabilityResponse{
				BusinessID: req.BusinessID,
				Exists:     true,
				Schedule:   req.Schedule,
				Exceptions: []domain.Exception{},
			}, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), SaveAvailabilityRequest{
		Schedule: domain.DefaultWeeklySchedule(),
	}, true)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
}

func TestHandler_MissingUserID(t *testing.T) {
	svc := &mockService{
		saveFn: func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
			t.Fatal("service must not be called without auth")
			return nil, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), SaveAvailabilityRequest{
		Schedule: domain.DefaultWeeklySchedule(),
	}, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_ValidationErrorCarriesDayMap(t *testing.T) {
	svc := &mockService{
		saveFn: func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
			return nil, &availability.ValidationError{Days: map[domain.Weekday]string{
				domain.Monday: domain.MsgNoShifts,
				domain.Friday: domain.MsgOverlappingShift,
			}}
		},
	}

	rec := doRequest(t, newTestRouter(svc), SaveAvailabilityRequest{
		Schedule: domain.DefaultWeeklySchedule(),
	}, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.MsgNoShifts, resp.Fields["monday"])
	assert.Equal(t, domain.MsgOverlappingShift, resp.Fields["friday"])
}

func TestHandler_ConcurrentWriteConflict(t *testing.T) {
	svc := &mockService{
		saveFn: func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
			return nil, availability.ErrWriteInFlight
		},
	}

	rec := doRequest(t, newTestRouter(svc), SaveAvailabilityRequest{
		Schedule: domain.DefaultWeeklySchedule(),
	}, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_InvalidBody(t *testing.T) {
	svc := &mockService{
		saveFn: func(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/businesses/42/availability", bytes.NewReader([]byte("{not json")))
	req.Header.Set("X-User-ID", "100")

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
