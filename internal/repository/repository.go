// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/questdeckhq/questdeck/internal/domain"
)

// storeErr classifies an unexpected database failure as a retryable
// infrastructure error, keeping outages distinguishable from empty results.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrUnavailable, err))
}
