package get_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if req.To.Sub(req.From).Hours() > 24*maxRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooWide, maxRangeDays)
	}

	return nil
}
