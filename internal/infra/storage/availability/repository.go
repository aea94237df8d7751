package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий для работы с записями доступности бизнеса.
// Запись хранится одной строкой на бизнес: working_hours, open_days и
// exceptions лежат в JSONB-колонках в том же wire-формате, что и API.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись доступности для бизнеса.
// Если запись уже существует, возвращает ErrRecordAlreadyExists.
func (r *Repository) Create(ctx context.Context, businessID int64, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHours, openDays, exceptions, err := encodeRecord(record)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("business_availability").
		Columns("business_id", "working_hours", "open_days", "exceptions").
		Values(businessID, workingHours, openDays, exceptions).
		Suffix("RETURNING working_hours, open_days, exceptions").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	created, err := scanRecord(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrRecordAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetByBusiness получает запись доступности бизнеса
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("working_hours", "open_days", "exceptions").
		From("business_availability").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// Update полностью перезаписывает запись доступности бизнеса
func (r *Repository) Update(ctx context.Context, businessID int64, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHours, openDays, exceptions, err := encodeRecord(record)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("business_availability").
		Set("working_hours", workingHours).
		Set("open_days", openDays).
		Set("exceptions", exceptions).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"business_id": businessID}).
		Suffix("RETURNING working_hours, open_days, exceptions").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	updated, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateExceptions частично обновляет запись: перезаписывает только
// exceptions, не трогая расписание (PATCH-аналог для операций с исключениями)
func (r *Repository) UpdateExceptions(ctx context.Context, businessID int64, exceptions []domain.Exception) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(exceptions)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateExceptions - marshal exceptions: %v", ErrEncodeRecord, err)
	}

	query, args, err := psqlbuilder.Update("business_availability").
		Set("exceptions", encoded).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"business_id": businessID}).
		Suffix("RETURNING working_hours, open_days, exceptions").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateExceptions - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	updated, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateExceptions - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// Helper functions

func encodeRecord(record *domain.AvailabilityRecord) ([]byte, []byte, []byte, error) {
	workingHours, err := json.Marshal(record.WorkingHours)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: marshal working_hours: %v", ErrEncodeRecord, err)
	}

	openDays, err := json.Marshal(record.OpenDays)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: marshal open_days: %v", ErrEncodeRecord, err)
	}

	exceptions := record.Exceptions
	if exceptions == nil {
		exceptions = []domain.Exception{}
	}
	encodedExceptions, err := json.Marshal(exceptions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: marshal exceptions: %v", ErrEncodeRecord, err)
	}

	return workingHours, openDays, encodedExceptions, nil
}

func scanRecord(row *sql.Row) (*domain.AvailabilityRecord, error) {
	var workingHours, openDays, exceptions []byte
	if err := row.Scan(&workingHours, &openDays, &exceptions); err != nil {
		return nil, err
	}

	var record domain.AvailabilityRecord
	if err := json.Unmarshal(workingHours, &record.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: unmarshal working_hours: %v", ErrDecodeRecord, err)
	}
	if err := json.Unmarshal(openDays, &record.OpenDays); err != nil {
		return nil, fmt.Errorf("%w: unmarshal open_days: %v", ErrDecodeRecord, err)
	}
	if err := json.Unmarshal(exceptions, &record.Exceptions); err != nil {
		return nil, fmt.Errorf("%w: unmarshal exceptions: %v", ErrDecodeRecord, err)
	}

	return &record, nil
}
