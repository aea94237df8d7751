package get_calendar

import (
	"context"

	getCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
)

type CalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendarUC.Request) (*getCalendarUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
