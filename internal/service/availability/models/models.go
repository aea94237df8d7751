package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// SaveAvailabilityRequest запрос на создание или полное сохранение
// доступности бизнеса: недельное расписание плюс все текущие исключения
type SaveAvailabilityRequest struct {
	BusinessID int64                 `json:"businessId"`
	Schedule   domain.WeeklySchedule `json:"schedule"`
	Exceptions []domain.Exception    `json:"exceptions"`
}

// AddExceptionRequest запрос на добавление бизнес-исключения
type AddExceptionRequest struct {
	BusinessID int64              `json:"businessId"`
	Date       string             `json:"date"` // YYYY-MM-DD
	Reason     string             `json:"reason,omitempty"`
	IsAllDay   bool               `json:"isAllDay"`
	TimeSlots  []domain.TimeShift `json:"timeSlots,omitempty"`
}

// RemoveExceptionRequest запрос на удаление бизнес-исключения по индексу
type RemoveExceptionRequest struct {
	BusinessID int64 `json:"businessId"`
	Index      int   `json:"index"`
}

// Response модели

// AvailabilityResponse ответ с текущей доступностью бизнеса.
// Exists=false означает, что записи еще нет и возвращено дефолтное
// расписание с пустым списком исключений.
type AvailabilityResponse struct {
	BusinessID int64                 `json:"businessId"`
	Exists     bool                  `json:"exists"`
	Schedule   domain.WeeklySchedule `json:"schedule"`
	Exceptions []domain.Exception    `json:"exceptions"`
}

// FromRecord конвертирует wire-формат записи в ответ сервиса
func FromRecord(businessID int64, record *domain.AvailabilityRecord) *AvailabilityResponse {
	return &AvailabilityResponse{
		BusinessID: businessID,
		Exists:     true,
		Schedule:   record.WeeklySchedule(),
		Exceptions: record.Exceptions,
	}
}

// DefaultResponse возвращает дефолтную модель для бизнеса без записи
func DefaultResponse(businessID int64) *AvailabilityResponse {
	return &AvailabilityResponse{
		BusinessID: businessID,
		Exists:     false,
		Schedule:   domain.DefaultWeeklySchedule(),
		Exceptions: []domain.Exception{},
	}
}
