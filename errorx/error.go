package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// CliniaError is the error type shared across clinia modules. The Type
// drives programmatic handling; Message is for humans.
type CliniaError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	// Details carries nested errors accumulated via WithDetails.
	Details []CliniaError `json:"details,omitempty"`

	stack Callers
}

var _ error = (*CliniaError)(nil)

func (e *CliniaError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// StackTrace returns the call stack captured at construction.
func (e *CliniaError) StackTrace() Callers {
	return e.stack
}

// WithDetails returns the same error with the given errors appended to its
// details.
func (e *CliniaError) WithDetails(details ...*CliniaError) *CliniaError {
	for _, d := range details {
		e.Details = append(e.Details, CliniaError{Type: d.Type, Message: d.Message, Details: d.Details})
	}
	return e
}

func newWithStack(t ErrorType, msg string) *CliniaError {
	return &CliniaError{
		Type:    t,
		Message: msg,
		stack:   callers(1),
	}
}

// IsCliniaError resolves e through its causes and reports whether it is a
// typed CliniaError.
func IsCliniaError(e error) (*CliniaError, bool) {
	e = errors.Cause(e)
	mE, ok := e.(*CliniaError)
	if !ok {
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return mE, true
}
