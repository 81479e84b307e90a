package cmd

// ExitError carries a specific process exit code out of a command.
// main unwraps it with errors.As to set the code.
type ExitError struct {
	Code    int
	Message string
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func (e *ExitError) Error() string {
	return e.Message
}
