package staffservice

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// StaffExceptionList ответ StaffService со списком исключений сотрудников
type StaffExceptionList struct {
	Exceptions []domain.StaffException `json:"exceptions"`
}

// ReviewRequest тело запроса approve/deny.
// ReviewedAt и ReviewedByName проставляет сам StaffService.
type ReviewRequest struct {
	ReviewerID int64   `json:"reviewer_id"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
