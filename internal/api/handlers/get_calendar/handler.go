package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDateRange  = "некорректный диапазон дат"
	msgRangeTooWide      = "диапазон дат слишком широкий"
)

type Handler struct {
	useCase CalendarUseCase
	logger  Logger
}

func NewHandler(useCase CalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessIDStr := vars["businessId"]

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability/calendar - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Извлекаем границы диапазона из query-параметров.
	// Даты локальные: парсим без UTC-сдвига.
	from, err := domain.ParseLocalDate(r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability/calendar - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := domain.ParseLocalDate(r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability/calendar - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	// Размечаем календарь
	result, err := h.useCase.Execute(r.Context(), &getCalendarUC.Request{
		BusinessID: businessID,
		From:       from,
		To:         to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarUC.ErrRangeTooWide):
			h.logger.Warn("GET /businesses/{id}/availability/calendar - Range too wide: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, getCalendarUC.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/availability/calendar - Invalid input: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /businesses/{id}/availability/calendar - Failed to build calendar: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability/calendar - Calendar built: business_id=%d, days=%d",
		businessID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
