package querybuilder

import (
	"errors"

	"github.com/biyonik/go-query-builder/internal/validation"
)

// Sentinel errors for go-query-builder.
// These errors can be checked using errors.Is().
// They are only produced in strict mode; ToSQL never fails.
var (
	// ErrInvalidIdentifier is recorded when a table or column name contains invalid characters.
	ErrInvalidIdentifier = errors.New("querybuilder: invalid SQL identifier")

	// ErrInvalidOperator is recorded when a WHERE operator is not in the allowed list.
	ErrInvalidOperator = errors.New("querybuilder: invalid SQL operator")

	// ErrInvalidDirection is recorded when an ORDER BY direction is not ASC or DESC.
	ErrInvalidDirection = errors.New("querybuilder: invalid order direction")

	// ErrEmptySelect is recorded when Select is called without columns.
	ErrEmptySelect = errors.New("querybuilder: empty select list")

	// ErrNoTable is recorded when the builder is created with an empty table name.
	ErrNoTable = errors.New("querybuilder: no table specified")
)

// ValidationError describes one rejected input. Kind is one of the sentinel
// errors above and is what errors.Is matches against.
type ValidationError struct {
	Context string
	Value   string
	Reason  string
	Kind    error
}

func (e *ValidationError) Error() string {
	return "querybuilder: invalid " + e.Context + " '" + e.Value + "': " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == e.Kind
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError creates a new ValidationError.
func NewValidationError(context, value, reason string, kind error) *ValidationError {
	return &ValidationError{
		Context: context,
		Value:   value,
		Reason:  reason,
		Kind:    kind,
	}
}

// fromValidation converts an internal validation failure into a ValidationError.
func fromValidation(context, value string, err error, kind error) *ValidationError {
	var (
		idErr *validation.IdentifierError
		opErr *validation.OperatorError
	)

	reason := err.Error()
	switch {
	case errors.As(err, &idErr):
		reason = idErr.Reason
	case errors.As(err, &opErr):
		reason = opErr.Reason
	}

	return NewValidationError(context, value, reason, kind)
}
