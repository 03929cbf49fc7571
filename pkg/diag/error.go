package diag

import (
	"fmt"
	"strings"
)

// ErrorTag is used to parameterize [Error] into different concrete types. The
// ErrorTag method returns a string that is used as the error type, like
// "parse error".
type ErrorTag interface {
	ErrorTag() string
}

// Error is an error with a source context.
type Error[T ErrorTag] struct {
	Message string
	Context Context
	// The variant of the error, which errors.Is can match against. May be nil.
	Cause error
}

// Markers around the message in Show, changed in tests.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Error returns a plain text representation of the error.
func (e *Error[T]) Error() string {
	return errorTag[T]() + ": " + e.Context.Position() + ": " + e.Message
}

// Range returns the range of the error.
func (e *Error[T]) Range() Ranging {
	return e.Context.Range()
}

// Unwrap returns the variant of the error.
func (e *Error[T]) Unwrap() error {
	return e.Cause
}

// Show shows the error.
func (e *Error[T]) Show(indent string) string {
	return fmt.Sprintf("%s: %s%s%s\n%s  %s",
		capitalize(errorTag[T]()), messageStart, e.Message, messageEnd,
		indent, e.Context.ShowCompact(indent+"  "))
}

func errorTag[T ErrorTag]() string {
	var t T
	return t.ErrorTag()
}

// PackErrors packs multiple instances of [Error] with the same tag into one
// error:
//
//   - If called with no errors, it returns nil.
//
//   - If called with one error, it returns that error itself.
//
//   - If called with more than one error, it returns an error that combines
//     all of them. The returned error also implements [Shower], and can be
//     unpacked with [UnpackErrors].
func PackErrors[T ErrorTag](errs []*Error[T]) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return multiError[T](errs)
	}
}

// UnpackErrors returns the constituent [Error] instances in an error if it is
// built from [PackErrors]. Otherwise it returns nil.
func UnpackErrors[T ErrorTag](err error) []*Error[T] {
	switch err := err.(type) {
	case *Error[T]:
		return []*Error[T]{err}
	case multiError[T]:
		return append([]*Error[T](nil), err...)
	default:
		return nil
	}
}

type multiError[T ErrorTag] []*Error[T]

func (me multiError[T]) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple " + errorTag[T]() + "s: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Context.Position() + ": " + e.Message)
	}
	return sb.String()
}

func (me multiError[T]) Show(indent string) string {
	var sb strings.Builder
	sb.WriteString("Multiple " + errorTag[T]() + "s:")
	for _, e := range me {
		sb.WriteString("\n" + indent + "  ")
		sb.WriteString(messageStart + e.Message + messageEnd + "\n")
		sb.WriteString(indent + "    ")
		sb.WriteString(e.Context.ShowCompact(indent + "    "))
	}
	return sb.String()
}

// Unwrap returns all the constituent errors, so that errors.Is finds the
// variant of any of them.
func (me multiError[T]) Unwrap() []error {
	errs := make([]error, len(me))
	for i, e := range me {
		errs[i] = e
	}
	return errs
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
