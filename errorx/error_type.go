package errorx

type ErrorType string

// Error types mirror the grpc status code names:
// https://chromium.googlesource.com/external/github.com/grpc/grpc/+/refs/tags/v1.21.4-pre1/doc/statuscodes.md

const (
	// ErrorTypeUnspecified should not be used to build errors; it only
	// exists to assert whether a cast produced a typed error.
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInternal        = ErrorType("INTERNAL")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
	ErrorTypeNotFound        = ErrorType("NOT_FOUND")
)

func ParseErrorType(s string) (ErrorType, error) {
	e := ErrorType(s)
	if err := e.Validate(); err != nil {
		return ErrorTypeUnspecified, err
	}

	return e, nil
}

func (e ErrorType) String() string {
	return string(e)
}

func (e ErrorType) Validate() error {
	switch e {
	case ErrorTypeInternal,
		ErrorTypeInvalidArgument,
		ErrorTypeNotFound:
		return nil
	default:
		return InvalidArgumentErrorf("invalid error type: %s", e)
	}
}
