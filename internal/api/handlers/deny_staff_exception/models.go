package deny_staff_exception

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions/models"
)

// ReviewRequest HTTP request model
type ReviewRequest struct {
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ReviewRequest) ToServiceRequest(exceptionID, reviewerID int64) *models.ReviewRequest {
	return &models.ReviewRequest{
		ExceptionID: exceptionID,
		ReviewerID:  reviewerID,
		AdminNotes:  r.AdminNotes,
	}
}
