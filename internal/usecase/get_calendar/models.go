package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса календаря на диапазон дат (границы включительно)
type Request struct {
	BusinessID int64     // ID бизнеса
	From       time.Time // Первая дата диапазона
	To         time.Time // Последняя дата диапазона
}

// Response модель ответа с размеченными датами календаря
type Response struct {
	BusinessID int64         `json:"businessId"`
	Days       []CalendarDay `json:"days"`
}

// CalendarDay одна дата календаря с классификацией и маршрутом клика
type CalendarDay struct {
	Date           string                   `json:"date"` // YYYY-MM-DD
	Classification domain.DayClassification `json:"classification"`
	Action         domain.DayAction         `json:"action"`
}
