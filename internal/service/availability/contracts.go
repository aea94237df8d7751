package availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, businessID int64, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error)
	GetByBusiness(ctx context.Context, businessID int64) (*domain.AvailabilityRecord, error)
	Update(ctx context.Context, businessID int64, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error)
	UpdateExceptions(ctx context.Context, businessID int64, exceptions []domain.Exception) (*domain.AvailabilityRecord, error)
}

// TransactionManager выполняет функцию внутри сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
