package check_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	// Полуинтервал [start, end) должен иметь положительную длину
	if !req.End.After(req.Start) {
		return ErrInvalidInterval
	}

	if req.CallerZone == "" {
		return fmt.Errorf("%w: caller timezone is required", ErrInvalidInput)
	}

	return nil
}
