package approve_staff_exception

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions"
)

const (
	msgInvalidExceptionID = "некорректный ID исключения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "исключение сотрудника не найдено"
	msgAlreadyReviewed    = "исключение уже рассмотрено"
)

type Handler struct {
	service StaffExceptionService
	logger  Logger
}

func NewHandler(service StaffExceptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/staff-exceptions/{exceptionId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем exceptionId из URL
	vars := mux.Vars(r)
	exceptionIDStr := vars["exceptionId"]

	exceptionID, err := strconv.ParseInt(exceptionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff-exceptions/{id}/approve - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	// Получаем userID из контекста: он же ID рассматривающего админа
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /staff-exceptions/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body (опциональный: заметки админа могут отсутствовать)
	var req ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /staff-exceptions/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Переводим исключение в approved
	result, err := h.service.Approve(r.Context(), req.ToServiceRequest(exceptionID, userID))
	if err != nil {
		switch {
		case errors.Is(err, staffexceptions.ErrExceptionNotFound):
			h.logger.Warn("POST /staff-exceptions/{id}/approve - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staffexceptions.ErrAlreadyReviewed):
			h.logger.Warn("POST /staff-exceptions/{id}/approve - Already reviewed: exception_id=%d", exceptionID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, staffexceptions.ErrInvalidInput):
			h.logger.Warn("POST /staff-exceptions/{id}/approve - Invalid input: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondBadRequest(w, msgInvalidExceptionID)

		default:
			h.logger.Error("POST /staff-exceptions/{id}/approve - Failed to approve: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff-exceptions/{id}/approve - Exception approved: exception_id=%d, reviewer_id=%d",
		exceptionID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
