package builder

import (
	"fmt"
	"strconv"
	"strings"

	"cabinet_kiosk/internal/domain/entities"
)

// Validation bounds per category. Integer categories share the cabinet bound.
const (
	minQuantity = 1
	maxQuantity = 1000

	minFlooringSqFt = 0.1
	maxFlooringSqFt = 100000

	minCountertopLinFt = 0.1
	maxCountertopLinFt = 10000
)

// ValidationError is a local, recoverable input error. The store is never
// mutated when one is returned; the caller re-prompts the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateRaw checks a raw quantity/measurement string against the bounds for
// its category and returns the parsed value. Integer categories reject
// non-integer input outright.
func ValidateRaw(c entities.Category, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, newValidationError("value is required")
	}

	switch c {
	case entities.CategoryFlooring:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, newValidationError("square feet must be a number")
		}
		if v < minFlooringSqFt || v > maxFlooringSqFt {
			return 0, newValidationError("square feet must be between %g and %g", float64(minFlooringSqFt), float64(maxFlooringSqFt))
		}
		return v, nil

	case entities.CategoryCountertop:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, newValidationError("linear feet must be a number")
		}
		if v < minCountertopLinFt || v > maxCountertopLinFt {
			return 0, newValidationError("linear feet must be between %g and %g", float64(minCountertopLinFt), float64(maxCountertopLinFt))
		}
		return v, nil

	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, newValidationError("quantity must be a whole number")
		}
		if n < minQuantity || n > maxQuantity {
			return 0, newValidationError("quantity must be between %d and %d", minQuantity, maxQuantity)
		}
		return float64(n), nil
	}
}
