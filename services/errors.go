package services

import "fmt"

// ErrorKind classifies a workflow failure. The HTTP layer maps kinds to
// status codes; messages are safe to show to callers and never carry
// persistence-engine text.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota + 1
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindInternal
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ErrInvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func ErrNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ErrUnauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "unauthenticated"}
}

func ErrForbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "forbidden"}
}

// ErrInternal wraps a persistence failure. The wrapped error stays available
// for logs; the caller only sees the generic message.
func ErrInternal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}
