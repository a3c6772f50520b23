package book_consultation

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		return ErrInvalidInterval
	}

	if req.CallerZone == "" {
		return fmt.Errorf("%w: caller timezone is required", ErrInvalidInput)
	}

	if req.Start.Before(now) {
		return ErrStartInPast
	}

	return nil
}
