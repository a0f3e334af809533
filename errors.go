package descent

import (
	"fmt"
	"strings"
)

// ParseError is a diagnostic produced while scanning or parsing. Scanners and
// parsers never stop at errors; they record them and go on.
type ParseError struct {
	Location Location
	Message  string
}

// Error renders the error as "{location} {message}".
func (e ParseError) Error() string {
	return fmt.Sprintf("%s %s", e.Location, e.Message)
}

// ErrorList collects errors for a single scan or parse call. Errors are
// kept in the order they were recorded. The zero value is an empty list.
type ErrorList struct {
	errs []ParseError
}

// Add appends an error.
func (el *ErrorList) Add(loc Location, msg string) {
	el.errs = append(el.errs, ParseError{Location: loc, Message: msg})
}

// Append appends all errors of another list.
func (el *ErrorList) Append(other ErrorList) {
	el.errs = append(el.errs, other.errs...)
}

// Len returns the number of errors recorded.
func (el ErrorList) Len() int {
	return len(el.errs)
}

// At returns error #i.
func (el ErrorList) At(i int) ParseError {
	return el.errs[i]
}

// Errors returns a copy of the recorded errors.
func (el ErrorList) Errors() []ParseError {
	if len(el.errs) == 0 {
		return nil
	}
	errs := make([]ParseError, len(el.errs))
	copy(errs, el.errs)
	return errs
}

// Reset clears the list.
func (el *ErrorList) Reset() {
	el.errs = nil // lists handed out earlier must not see later errors
}

// Err returns nil for an empty list, the list itself otherwise.
func (el ErrorList) Err() error {
	if len(el.errs) == 0 {
		return nil
	}
	return el
}

// Error joins all errors, one per line.
func (el ErrorList) Error() string {
	switch len(el.errs) {
	case 0:
		return "no errors"
	case 1:
		return el.errs[0].Error()
	}
	var b strings.Builder
	for i, e := range el.errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
