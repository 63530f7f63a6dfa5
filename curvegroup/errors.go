package curvegroup

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrCurveNameMismatch = fmt.Errorf("curve name mismatch: %w", commerr.ErrInvalidArgument)
	ErrConflictingRole   = fmt.Errorf("conflicting curve role: %w", commerr.ErrAlreadyExists)
	ErrEmptyName         = fmt.Errorf("empty name: %w", commerr.ErrInvalidArgument)
)
