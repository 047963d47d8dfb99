package workouts

import (
	"github.com/Varshini0817/Ject/internal/apperr"
)

var (
	ErrGoalMissing     = apperr.New(apperr.ErrConflict, "Goal not set for this activity")
	ErrDuplicateEntry  = apperr.New(apperr.ErrConflict, "An entry for this activity already exists on this date")
	ErrFutureDate      = apperr.New(apperr.ErrValidation, "Cannot log workouts for future dates")
	ErrInvalidDate     = apperr.New(apperr.ErrValidation, "Invalid date format")
	ErrUnknownActivity = apperr.New(apperr.ErrValidation, "Unknown activity")
	ErrMissingRange    = apperr.New(apperr.ErrValidation, "startDate and endDate query parameters are required")
	ErrInvalidRange    = apperr.New(apperr.ErrValidation, "Invalid date format for startDate or endDate")
	ErrUserNotFound    = apperr.New(apperr.ErrNotFound, "User not found")
	ErrGoalNotFound    = apperr.New(apperr.ErrNotFound, "Goal not found")
)
