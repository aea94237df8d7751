package staffservice

import "errors"

var (
	// ErrExceptionNotFound возвращается, когда исключение сотрудника не найдено
	ErrExceptionNotFound = errors.New("staff exception not found")

	// ErrAlreadyReviewed возвращается, когда исключение уже рассмотрено
	// (статус approved или denied терминальный)
	ErrAlreadyReviewed = errors.New("staff exception already reviewed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
