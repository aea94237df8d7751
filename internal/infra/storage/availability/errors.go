package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись доступности не найдена
	ErrRecordNotFound = errors.New("availability.repository: record not found")

	// ErrRecordAlreadyExists возвращается при попытке создать вторую запись для бизнеса
	ErrRecordAlreadyExists = errors.New("availability.repository: record already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeRecord возвращается при ошибке сериализации записи в JSONB
	ErrEncodeRecord = errors.New("availability.repository: failed to encode record")

	// ErrDecodeRecord возвращается при ошибке десериализации записи из JSONB
	ErrDecodeRecord = errors.New("availability.repository: failed to decode record")
)
