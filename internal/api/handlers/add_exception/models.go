package add_exception

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// AddExceptionRequest HTTP request model
type AddExceptionRequest struct {
	Date      string             `json:"date"` // YYYY-MM-DD
	Reason    string             `json:"reason,omitempty"`
	IsAllDay  bool               `json:"isAllDay"`
	TimeSlots []domain.TimeShift `json:"timeSlots,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddExceptionRequest) ToServiceRequest(businessID int64) *models.AddExceptionRequest {
	return &models.AddExceptionRequest{
		BusinessID: businessID,
		Date:       r.Date,
		Reason:     r.Reason,
		IsAllDay:   r.IsAllDay,
		TimeSlots:  r.TimeSlots,
	}
}
