package remove_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidIndex      = "некорректный индекс исключения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "запись доступности не найдена"
	msgWriteInFlight     = "запись уже обновляется другим запросом"
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

// Handle DELETE /api/v1/businesses/{businessId}/availability/exceptions/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId и index из URL
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем исключение (запись сохраняется немедленно)
	result, err := h.service.RemoveException(r.Context(), &models.RemoveExceptionRequest{
		BusinessID: businessID,
		Index:      index,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRecordNotFound):
			h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Record not found: business_id=%d",
				businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrWriteInFlight):
			h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Concurrent write rejected: business_id=%d",
				businessID)
			handlers.RespondConflict(w, msgWriteInFlight)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("DELETE /businesses/{id}/availability/exceptions/{index} - Invalid input: business_id=%d, index=%d, error=%v",
				businessID, index, err)
			handlers.RespondBadRequest(w, msgInvalidIndex)

		default:
			h.logger.Error("DELETE /businesses/{id}/availability/exceptions/{index} - Failed to remove exception: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/availability/exceptions/{index} - Exception removed: business_id=%d, index=%d, user_id=%d",
		businessID, index, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
