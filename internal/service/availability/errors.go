package availability

import (
	"errors"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrRecordNotFound возвращается, когда запись доступности не найдена
	ErrRecordNotFound = errors.New("availability record not found")

	// ErrRecordAlreadyExists возвращается при повторном создании записи
	ErrRecordAlreadyExists = errors.New("availability record already exists")

	// ErrValidationFailed возвращается, когда расписание не прошло валидацию.
	// Сохранение при этом не доходит до хранилища.
	ErrValidationFailed = errors.New("schedule validation failed")

	// ErrDuplicateException возвращается при попытке добавить второе
	// исключение на ту же дату
	ErrDuplicateException = errors.New("exception already exists for this date")

	// ErrWriteInFlight возвращается, когда запись бизнеса уже обновляется
	// другим запросом: одновременно допустима только одна полная запись
	ErrWriteInFlight = errors.New("another write to this availability record is in flight")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибка валидации расписания с картой ошибок по дням.
// Разворачивается в ErrValidationFailed для errors.Is.
type ValidationError struct {
	Days map[domain.Weekday]string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
