package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
)

// maxRangeDays максимальная ширина запрашиваемого диапазона
const maxRangeDays = 366

// UseCase use case разметки календаря: для каждой даты диапазона сводит
// бизнес-исключения и исключения сотрудников в одну классификацию и
// маршрут клика
type UseCase struct {
	availabilityRepo AvailabilityRepository
	staffClient      StaffServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		staffClient:      staffClient,
		logger:           logger,
	}
}

// Execute выполняет use case разметки календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: business=%d, from=%s, to=%s",
		req.BusinessID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес-исключения из записи доступности.
	// Отсутствие записи - не ошибка: календарь размечается без
	// бизнес-исключений
	exceptions := []domain.Exception{}
	record, err := uc.availabilityRepo.GetByBusiness(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, availabilityRepo.ErrRecordNotFound) {
		uc.logger.Error("GetCalendar: failed to get availability for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	if record != nil {
		exceptions = record.Exceptions
	}

	// 3. Получаем исключения сотрудников
	staffExceptions, err := uc.staffClient.ListByBusiness(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get staff exceptions for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get staff exceptions: %v", ErrInternal, err)
	}

	// 4. Классифицируем каждую дату диапазона
	days := make([]CalendarDay, 0)
	for d := req.From; !d.After(req.To); d = d.AddDate(0, 0, 1) {
		date := domain.FormatLocalDate(d)
		days = append(days, CalendarDay{
			Date:           date,
			Classification: domain.ClassifyDate(date, exceptions, staffExceptions),
			Action:         domain.ResolveDayAction(date, staffExceptions),
		})
	}

	uc.logger.Info("GetCalendar: classified %d days for business=%d", len(days), req.BusinessID)

	return &Response{
		BusinessID: req.BusinessID,
		Days:       days,
	}, nil
}
