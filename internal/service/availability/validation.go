package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// validateSaveRequest проверяет запрос на сохранение доступности.
// Ошибки расписания никогда не уходят в хранилище: невалидное расписание
// отклоняется здесь с картой ошибок по дням.
func validateSaveRequest(req *models.SaveAvailabilityRequest) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Schedule == nil {
		return fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	for day := range req.Schedule {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}

	if dayErrors := domain.ValidateWeeklySchedule(req.Schedule); len(dayErrors) > 0 {
		return &ValidationError{Days: dayErrors}
	}

	return nil
}

// buildException валидирует запрос и собирает бизнес-исключение
func buildException(req *models.AddExceptionRequest) (*domain.Exception, error) {
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseLocalDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	exception := &domain.Exception{
		Date:     req.Date,
		Reason:   req.Reason,
		IsAllDay: req.IsAllDay,
	}

	if req.IsAllDay {
		// Частичные слоты уместны только для неполного дня
		return exception, nil
	}

	if len(req.TimeSlots) == 0 {
		return nil, fmt.Errorf("%w: time slots are required for partial-day exceptions", ErrInvalidInput)
	}
	for _, slot := range req.TimeSlots {
		if !slot.IsComplete() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, domain.MsgIncompleteShift)
		}
		if !slot.IsChronological() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, domain.MsgEndBeforeStart)
		}
	}
	if domain.ShiftsOverlap(req.TimeSlots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, domain.MsgOverlappingShift)
	}

	slots := make([]domain.TimeShift, len(req.TimeSlots))
	copy(slots, req.TimeSlots)
	exception.TimeSlots = slots

	return exception, nil
}
