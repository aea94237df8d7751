package staffexceptions

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.StaffException, error)
	Approve(ctx context.Context, exceptionID int64, review *staffservice.ReviewRequest) (*domain.StaffException, error)
	Deny(ctx context.Context, exceptionID int64, review *staffservice.ReviewRequest) (*domain.StaffException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
