package approve_staff_exception

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions/models"
)

type StaffExceptionService interface {
	Approve(ctx context.Context, req *models.ReviewRequest) (*domain.StaffException, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
