package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for property and correlation calculations.
var (
	// ErrDomain indicates a non-physical numeric input.
	ErrDomain = errors.New("thermo: non-physical input")

	// ErrComposition indicates mole fractions that do not form a valid composition.
	ErrComposition = errors.New("thermo: invalid composition")

	// ErrUnknownSpecies indicates an unrecognised chemical symbol or formula.
	ErrUnknownSpecies = errors.New("thermo: unknown species")

	// ErrOutOfRange indicates an operating point outside every correlation region.
	ErrOutOfRange = errors.New("thermo: operating point outside all correlation regions")
)

// DomainError reports which quantity was non-physical.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %g (%s)", ErrDomain, e.Quantity, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// RequirePositive returns a DomainError unless v is a finite number > 0.
func RequirePositive(quantity string, v float64) error {
	if !(v > 0) || isInf(v) {
		return &DomainError{Quantity: quantity, Value: v, Reason: "must be positive"}
	}
	return nil
}

// RequireNonNegative returns a DomainError unless v is a finite number >= 0.
func RequireNonNegative(quantity string, v float64) error {
	if !(v >= 0) || isInf(v) {
		return &DomainError{Quantity: quantity, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// CompositionError wraps an invalid set of mole fractions.
type CompositionError struct {
	Sum    float64
	Reason string
}

func (e *CompositionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrComposition, e.Reason)
	}
	return fmt.Sprintf("%s: mole fractions sum to %g, want 1", ErrComposition, e.Sum)
}

func (e *CompositionError) Unwrap() error {
	return ErrComposition
}
