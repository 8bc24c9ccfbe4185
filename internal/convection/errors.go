package convection

import (
	"errors"
	"fmt"

	"github.com/san-kum/auxi/internal/thermo"
)

// ErrUnknownRegion is returned when a forced region is not in the table.
var ErrUnknownRegion = errors.New("convection: unknown region")

// OutOfRangeError reports an operating point that no region covers when
// extrapolation is disabled.
type OutOfRangeError struct {
	Ra      float64
	Theta   float64
	Nearest Region
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: Ra = %.3g, φ = %g°; nearest is %s", thermo.ErrOutOfRange, e.Ra, e.Theta, e.Nearest)
}

func (e *OutOfRangeError) Unwrap() error {
	return thermo.ErrOutOfRange
}
