package staffexceptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	staffClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions/models"
)

// Service сервис workflow исключений сотрудников.
// Коллекция принадлежит StaffService; здесь только чтение для сверки с
// календарем и переходы pending -> approved/denied по действию админа.
type Service struct {
	staffClient StaffServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(staffClient StaffServiceClient, logger Logger) *Service {
	return &Service{
		staffClient: staffClient,
		logger:      logger,
	}
}

// List возвращает полную коллекцию исключений сотрудников бизнеса в том
// виде, в каком ее отдал StaffService
func (s *Service) List(ctx context.Context, businessID int64) (*models.StaffExceptionListResponse, error) {
	s.logger.Info("List: fetching staff exceptions for business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	exceptions, err := s.staffClient.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("List: staffservice error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - staffservice error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff exceptions for business=%d", len(exceptions), businessID)
	return &models.StaffExceptionListResponse{Exceptions: exceptions}, nil
}

// Approve переводит исключение в статус approved.
// Операция имеет смысл только для pending: для уже рассмотренного
// исключения возвращается ErrAlreadyReviewed.
func (s *Service) Approve(ctx context.Context, req *models.ReviewRequest) (*domain.StaffException, error) {
	s.logger.Info("Approve: exception=%d by reviewer=%d", req.ExceptionID, req.ReviewerID)

	if err := validateReviewRequest(req); err != nil {
		s.logger.Warn("Approve: validation failed: %v", err)
		return nil, err
	}

	exception, err := s.staffClient.Approve(ctx, req.ExceptionID, &staffClient.ReviewRequest{
		ReviewerID: req.ReviewerID,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return nil, s.mapClientError("Approve", req.ExceptionID, err)
	}

	s.logger.Info("Approve: exception=%d approved by %s", exception.ID, stringOrEmpty(exception.ReviewedByName))
	return exception, nil
}

// Deny переводит исключение в статус denied
func (s *Service) Deny(ctx context.Context, req *models.ReviewRequest) (*domain.StaffException, error) {
	s.logger.Info("Deny: exception=%d by reviewer=%d", req.ExceptionID, req.ReviewerID)

	if err := validateReviewRequest(req); err != nil {
		s.logger.Warn("Deny: validation failed: %v", err)
		return nil, err
	}

	exception, err := s.staffClient.Deny(ctx, req.ExceptionID, &staffClient.ReviewRequest{
		ReviewerID: req.ReviewerID,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return nil, s.mapClientError("Deny", req.ExceptionID, err)
	}

	s.logger.Info("Deny: exception=%d denied by %s", exception.ID, stringOrEmpty(exception.ReviewedByName))
	return exception, nil
}

// Вспомогательные методы

func validateReviewRequest(req *models.ReviewRequest) error {
	if req.ExceptionID <= 0 {
		return fmt.Errorf("%w: exceptionID must be positive", ErrInvalidInput)
	}
	if req.ReviewerID <= 0 {
		return fmt.Errorf("%w: reviewerID must be positive", ErrInvalidInput)
	}
	return nil
}

func (s *Service) mapClientError(op string, exceptionID int64, err error) error {
	switch {
	case errors.Is(err, staffClient.ErrExceptionNotFound):
		s.logger.Warn("%s: exception=%d not found", op, exceptionID)
		return ErrExceptionNotFound
	case errors.Is(err, staffClient.ErrAlreadyReviewed):
		s.logger.Warn("%s: exception=%d already reviewed", op, exceptionID)
		return ErrAlreadyReviewed
	default:
		s.logger.Error("%s: staffservice error for exception=%d: %v", op, exceptionID, err)
		return fmt.Errorf("%w: %s - staffservice error: %v", ErrInternal, op, err)
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
