package get_staff_exceptions

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions/models"
)

type StaffExceptionService interface {
	List(ctx context.Context, businessID int64) (*models.StaffExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
