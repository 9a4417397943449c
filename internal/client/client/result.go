package client

// GenericFailureMessage is shown for every failure the server did not
// describe itself.
const GenericFailureMessage = "Something went wrong. Please try again.."

// Ack is the empty payload of operations that only report success.
type Ack struct{}

// Result is the outcome of one API call.
//
// OK and Message mirror the server's {error, message} envelope. Value holds
// the decoded "result" object on success. Cause is set only when the call
// failed before a usable envelope was received; it is for logging and
// errors.Is checks, never for display.
type Result[T any] struct {
	OK      bool
	Message string
	Value   T
	Cause   error
}

// Succeeded builds a successful result.
func Succeeded[T any](message string, value T) Result[T] {
	return Result[T]{OK: true, Message: message, Value: value}
}

// Rejected builds a failure reported by the server.
func Rejected[T any](message string) Result[T] {
	return Result[T]{Message: message}
}

// Failed builds a failure caused by err, with the generic message.
func Failed[T any](err error) Result[T] {
	return Result[T]{Message: GenericFailureMessage, Cause: err}
}

// envelope is the JSON body every auth endpoint answers with.
type envelope[T any] struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
}
