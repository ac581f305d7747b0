package parser

import "fmt"

// LoweringError is a syntax error produced while lowering a ListNode to an
// Expression: bad arity of a special form, a non-identifier where one is
// required, and the like. Error() returns exactly the message text the
// language's error-reporting contract specifies — callers that want to
// report source position use Line/Column directly.
type LoweringError struct {
	Message string
	Line    int
	Column  int
}

func (e *LoweringError) Error() string { return e.Message }

func newLoweringError(line, column int, format string, args ...interface{}) *LoweringError {
	return &LoweringError{Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}
