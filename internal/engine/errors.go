package engine

// Message codes reported to the caller on rejected input.
const (
	CodeInvalidRate              = "INVALID_RATE"
	CodeInvalidAmount            = "INVALID_AMOUNT"
	CodeInvalidProjectionHorizon = "INVALID_PROJECTION_HORIZON"
)

// ValidationError identifies the offending field and the constraint it
// violates. Inputs are rejected before any arithmetic runs; nothing is
// clamped or partially computed.
type ValidationError struct {
	Field      string
	Constraint string
	Code       string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Constraint
}

func invalidRate(field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint, Code: CodeInvalidRate}
}

func invalidAmount(field string) *ValidationError {
	return &ValidationError{Field: field, Constraint: "must be non-negative", Code: CodeInvalidAmount}
}
