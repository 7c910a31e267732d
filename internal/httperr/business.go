package httperr

import "errors"

// Kind is the machine-checkable error class. Handlers translate kinds
// into HTTP statuses; usecases only ever deal in kinds and codes.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"

	// KindConflict covers every scheduling rejection: outside schedule,
	// time off, overlapping reservation, and the race lost at commit.
	KindConflict Kind = "scheduling_conflict"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrInvalidInput(code, message string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
