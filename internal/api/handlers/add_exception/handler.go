package add_exception

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
	msgDuplicateException = "исключение на эту дату уже существует"
	msgWriteInFlight      = "запись уже обновляется другим запросом"
	msgInvalidException   = "некорректные данные исключения"
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

// Handle POST /api/v1/businesses/{businessId}/availability/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessIDStr := vars["businessId"]

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/availability/exceptions - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/availability/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req AddExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/availability/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Добавляем исключение (запись сохраняется немедленно)
	result, err := h.service.AddException(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDuplicateException):
			h.logger.Warn("POST /businesses/{id}/availability/exceptions - Duplicate date: business_id=%d, date=%s",
				businessID, req.Date)
			handlers.RespondConflict(w, msgDuplicateException)

		case errors.Is(err, availability.ErrWriteInFlight):
			h.logger.Warn("POST /businesses/{id}/availability/exceptions - Concurrent write rejected: business_id=%d",
				businessID)
			handlers.RespondConflict(w, msgWriteInFlight)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/availability/exceptions - Invalid exception: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidException)

		default:
			h.logger.Error("POST /businesses/{id}/availability/exceptions - Failed to add exception: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/availability/exceptions - Exception added: business_id=%d, date=%s, user_id=%d",
		businessID, req.Date, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
