package staffexceptions

import "errors"

var (
	// ErrExceptionNotFound возвращается, когда исключение сотрудника не найдено
	ErrExceptionNotFound = errors.New("staff exception not found")

	// ErrAlreadyReviewed возвращается для терминальных статусов:
	// approved и denied не допускают дальнейших переходов
	ErrAlreadyReviewed = errors.New("staff exception already reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
