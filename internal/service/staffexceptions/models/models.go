package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ReviewRequest запрос на рассмотрение исключения сотрудника
type ReviewRequest struct {
	ExceptionID int64   `json:"exceptionId"`
	ReviewerID  int64   `json:"reviewerId"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
}

// StaffExceptionListResponse ответ со списком исключений сотрудников
type StaffExceptionListResponse struct {
	Exceptions []domain.StaffException `json:"exceptions"`
}
