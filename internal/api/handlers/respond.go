package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартное тело ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ошибки валидации расписания: карта
// сообщений по дням недели, ключ - день в нижнем регистре
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RespondJSON пишет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// RespondBadRequest пишет ответ 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// RespondUnauthorized пишет ответ 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// RespondForbidden пишет ответ 403 Forbidden
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: msg})
}

// RespondNotFound пишет ответ 404 Not Found
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

// RespondConflict пишет ответ 409 Conflict
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: msg})
}

// RespondValidationError пишет ответ 422 Unprocessable Entity с картой
// ошибок по дням
func RespondValidationError(w http.ResponseWriter, msg string, fields map[string]string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Error: msg, Fields: fields})
}

// RespondInternalError пишет ответ 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
}

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
