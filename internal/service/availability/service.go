package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// Service сервис доступности бизнеса: недельное расписание и
// бизнес-исключения. Расписание валидируется локально до любого обращения
// к хранилищу; операции с исключениями сохраняют запись немедленно,
// каждая операция — отдельная запись в БД.
type Service struct {
	repo      AvailabilityRepository
	txManager TransactionManager
	locks     *recordLocks
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		locks:     newRecordLocks(),
		logger:    logger,
	}
}

// Get возвращает текущую доступность бизнеса.
// Если записи еще нет, возвращает дефолтное расписание (каждый день
// 09:00-17:00, воскресенье закрыто) с пустым списком исключений и
// Exists=false — отсутствие записи не является ошибкой.
func (s *Service) Get(ctx context.Context, businessID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	record, err := s.repo.GetByBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			s.logger.Info("Get: no record for business=%d, returning defaults", businessID)
			return models.DefaultResponse(businessID), nil
		}
		s.logger.Error("Get: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromRecord(businessID, record), nil
}

// Create создает запись доступности бизнеса.
// Сохранение блокируется локально, пока расписание не проходит валидацию.
func (s *Service) Create(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: creating availability for business=%d", req.BusinessID)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	if !s.locks.tryAcquire(req.BusinessID) {
		s.logger.Warn("Create: concurrent write rejected for business=%d", req.BusinessID)
		return nil, ErrWriteInFlight
	}
	defer s.locks.release(req.BusinessID)

	record := domain.BuildAvailabilityRecord(req.Schedule, req.Exceptions)

	created, err := s.repo.Create(ctx, req.BusinessID, &record)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrRecordAlreadyExists) {
			s.logger.Warn("Create: record already exists for business=%d", req.BusinessID)
			return nil, ErrRecordAlreadyExists
		}
		s.logger.Error("Create: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created availability for business=%d", req.BusinessID)
	return models.FromRecord(req.BusinessID, created), nil
}

// Save полностью сохраняет доступность бизнеса: расписание плюс все
// текущие исключения одной записью. Если записи нет, она создается.
// При ошибке валидации хранилище не вызывается, а ошибка несет карту
// ошибок по дням.
func (s *Service) Save(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Save: saving availability for business=%d", req.BusinessID)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Save: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	if !s.locks.tryAcquire(req.BusinessID) {
		s.logger.Warn("Save: concurrent write rejected for business=%d", req.BusinessID)
		return nil, ErrWriteInFlight
	}
	defer s.locks.release(req.BusinessID)

	record := domain.BuildAvailabilityRecord(req.Schedule, req.Exceptions)

	var saved *domain.AvailabilityRecord
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := s.repo.GetByBusiness(txCtx, req.BusinessID)
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			saved, err = s.repo.Create(txCtx, req.BusinessID, &record)
			return err
		}
		if err != nil {
			return err
		}

		saved, err = s.repo.Update(txCtx, req.BusinessID, &record)
		return err
	})
	if err != nil {
		s.logger.Error("Save: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved availability for business=%d", req.BusinessID)
	return models.FromRecord(req.BusinessID, saved), nil
}

// AddException добавляет бизнес-исключение и немедленно сохраняет запись.
// Если записи еще нет, она создается с дефолтным расписанием и этим
// исключением. Ошибка сохранения оставляет хранимый список исключений
// ровно в состоянии до операции; автоматических повторов нет.
func (s *Service) AddException(ctx context.Context, req *models.AddExceptionRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("AddException: business=%d, date=%s, allDay=%v", req.BusinessID, req.Date, req.IsAllDay)

	exception, err := buildException(req)
	if err != nil {
		s.logger.Warn("AddException: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	if !s.locks.tryAcquire(req.BusinessID) {
		s.logger.Warn("AddException: concurrent write rejected for business=%d", req.BusinessID)
		return nil, ErrWriteInFlight
	}
	defer s.locks.release(req.BusinessID)

	var saved *domain.AvailabilityRecord
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetByBusiness(txCtx, req.BusinessID)
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			// Записи еще нет: создаем ее с дефолтным расписанием
			// и этим исключением
			created := domain.BuildAvailabilityRecord(domain.DefaultWeeklySchedule(), []domain.Exception{*exception})
			saved, err = s.repo.Create(txCtx, req.BusinessID, &created)
			return err
		}
		if err != nil {
			return err
		}

		if domain.HasExceptionOnDate(record.Exceptions, exception.Date) {
			return ErrDuplicateException
		}

		// Не трогаем прочитанный список: пишем копию с добавленным элементом
		updated := make([]domain.Exception, 0, len(record.Exceptions)+1)
		updated = append(updated, record.Exceptions...)
		updated = append(updated, *exception)

		saved, err = s.repo.UpdateExceptions(txCtx, req.BusinessID, updated)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateException) {
			s.logger.Warn("AddException: duplicate date %s for business=%d", req.Date, req.BusinessID)
			return nil, ErrDuplicateException
		}
		s.logger.Error("AddException: failed for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: AddException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddException: successfully added exception on %s for business=%d", req.Date, req.BusinessID)
	return models.FromRecord(req.BusinessID, saved), nil
}

// RemoveException удаляет бизнес-исключение по индексу и немедленно
// сохраняет запись. Работает только частичным обновлением: запись должна
// уже существовать.
func (s *Service) RemoveException(ctx context.Context, req *models.RemoveExceptionRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("RemoveException: business=%d, index=%d", req.BusinessID, req.Index)

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Index < 0 {
		return nil, fmt.Errorf("%w: index must be non-negative", ErrInvalidInput)
	}

	if !s.locks.tryAcquire(req.BusinessID) {
		s.logger.Warn("RemoveException: concurrent write rejected for business=%d", req.BusinessID)
		return nil, ErrWriteInFlight
	}
	defer s.locks.release(req.BusinessID)

	var saved *domain.AvailabilityRecord
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetByBusiness(txCtx, req.BusinessID)
		if err != nil {
			return err
		}

		if req.Index >= len(record.Exceptions) {
			return fmt.Errorf("%w: exception index %d out of range", ErrInvalidInput, req.Index)
		}

		updated := make([]domain.Exception, 0, len(record.Exceptions)-1)
		updated = append(updated, record.Exceptions[:req.Index]...)
		updated = append(updated, record.Exceptions[req.Index+1:]...)

		saved, err = s.repo.UpdateExceptions(txCtx, req.BusinessID, updated)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrRecordNotFound):
			s.logger.Warn("RemoveException: no record for business=%d", req.BusinessID)
			return nil, ErrRecordNotFound
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("RemoveException: %v (business=%d)", err, req.BusinessID)
			return nil, err
		default:
			s.logger.Error("RemoveException: failed for business=%d: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: RemoveException - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("RemoveException: successfully removed exception %d for business=%d", req.Index, req.BusinessID)
	return models.FromRecord(req.BusinessID, saved), nil
}
