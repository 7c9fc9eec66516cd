package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// ValidationError is returned for bad input before any simulation work starts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InternalInvariantError signals an engine defect. It never depends on user input
// being unusual, only on the engine being wrong.
type InternalInvariantError struct {
	Policy string
	Reason string
}

func (e *InternalInvariantError) Error() string {
	if e.Policy == "" {
		return fmt.Sprintf("%s: %s", ErrInternalInvariant, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInternalInvariant, e.Policy, e.Reason)
}

func (e *InternalInvariantError) Is(target error) bool {
	return target == ErrInternalInvariant
}

// ValidateDescriptors checks the shared input contract of every policy.
func ValidateDescriptors(descriptors []ProcessDescriptor) error {
	if len(descriptors) == 0 {
		return &ValidationError{Field: "processes", Reason: "at least one process is required"}
	}
	seen := make(map[int]struct{}, len(descriptors))
	for i, d := range descriptors {
		field := fmt.Sprintf("processes[%d]", i)
		if _, dup := seen[d.ID]; dup {
			return &ValidationError{Field: field + ".id", Reason: fmt.Sprintf("duplicate id %d", d.ID)}
		}
		seen[d.ID] = struct{}{}
		if d.ArrivalTime < 0 {
			return &ValidationError{Field: field + ".arrival_time", Reason: fmt.Sprintf("must be >= 0, got %d", d.ArrivalTime)}
		}
		if d.BurstTime < 1 {
			return &ValidationError{Field: field + ".burst_time", Reason: fmt.Sprintf("must be >= 1, got %d", d.BurstTime)}
		}
	}
	return nil
}
