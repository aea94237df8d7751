package create_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAlreadyExists      = "запись доступности уже существует"
	msgWriteInFlight      = "запись уже обновляется другим запросом"
	msgValidationFailed   = "расписание не прошло валидацию"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessIDStr := vars["businessId"]

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/availability - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем запись (валидация расписания внутри сервиса, до хранилища)
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		var validationErr *availability.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /businesses/{id}/availability - Validation failed: business_id=%d, days=%d",
				businessID, len(validationErr.Days))
			handlers.RespondValidationError(w, msgValidationFailed, ToFieldErrors(validationErr))

		case errors.Is(err, availability.ErrRecordAlreadyExists):
			h.logger.Warn("POST /businesses/{id}/availability - Record already exists: business_id=%d", businessID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, availability.ErrWriteInFlight):
			h.logger.Warn("POST /businesses/{id}/availability - Concurrent write rejected: business_id=%d", businessID)
			handlers.RespondConflict(w, msgWriteInFlight)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/availability - Invalid input: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /businesses/{id}/availability - Failed to create availability: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/availability - Availability created: business_id=%d, user_id=%d",
		businessID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
