package marketdata

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrValueNotFound           = fmt.Errorf("market data value not found: %w", commerr.ErrNotFound)
	ErrScenarioIndexOutOfRange = fmt.Errorf("scenario index out of range: %w", commerr.ErrOutOfRange)
	ErrSingleValueBox          = fmt.Errorf("box holds a single value: %w", commerr.ErrInvalidArgument)
	ErrScenarioCountMismatch   = fmt.Errorf("scenario count mismatch: %w", commerr.ErrInvalidArgument)
	ErrValueTypeMismatch       = fmt.Errorf("market data value type mismatch: %w", commerr.ErrInvalidArgument)
)

func scenarioIndexError(scenarioIndex, scenarioCount int) error {
	return fmt.Errorf("%w: index %d, scenario count %d", ErrScenarioIndexOutOfRange, scenarioIndex, scenarioCount)
}
