package update_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// SaveAvailabilityRequest HTTP request model
type SaveAvailabilityRequest struct {
	Schedule   domain.WeeklySchedule `json:"schedule"`
	Exceptions []domain.Exception    `json:"exceptions,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SaveAvailabilityRequest) ToServiceRequest(businessID int64) *models.SaveAvailabilityRequest {
	return &models.SaveAvailabilityRequest{
		BusinessID: businessID,
		Schedule:   r.Schedule,
		Exceptions: r.Exceptions,
	}
}

// ToFieldErrors конвертирует карту ошибок по дням в ответ API
func ToFieldErrors(err *availability.ValidationError) map[string]string {
	fields := make(map[string]string, len(err.Days))
	for day, msg := range err.Days {
		fields[string(day)] = msg
	}
	return fields
}
