package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	GetByBusiness(ctx context.Context, businessID int64) (*domain.AvailabilityRecord, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.StaffException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
