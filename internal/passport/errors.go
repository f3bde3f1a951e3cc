package passport

import "fmt"

// ErrorKind is the closed set of check-in failure kinds.
type ErrorKind string

const (
	KindCheckpointNotFound ErrorKind = "CHECKPOINT_NOT_FOUND"
	KindRateLimited        ErrorKind = "RATE_LIMITED"
	KindTooFast            ErrorKind = "TOO_FAST"
	KindAlreadyCheckedIn   ErrorKind = "ALREADY_CHECKED_IN"
	KindOutOfRange         ErrorKind = "OUT_OF_RANGE"
	KindMissingCode        ErrorKind = "MISSING_CODE"
	KindInvalidCode        ErrorKind = "INVALID_CODE"
	KindTransient          ErrorKind = "TRANSIENT_NETWORK_ERROR"
)

var knownKinds = map[ErrorKind]string{
	KindCheckpointNotFound: "checkpoint not found",
	KindRateLimited:        "too many check-ins in window",
	KindTooFast:            "minimum interval between check-ins not elapsed",
	KindAlreadyCheckedIn:   "already checked in at this checkpoint",
	KindOutOfRange:         "position outside checkpoint radius",
	KindMissingCode:        "partner code required",
	KindInvalidCode:        "partner code does not match",
	KindTransient:          "network unavailable",
}

// Terminal reports whether an attempt failing with this kind must not be
// retried automatically.
func (k ErrorKind) Terminal() bool {
	_, ok := knownKinds[k]
	return ok && k != KindTransient
}

// ParseKind converts a wire error code into an ErrorKind.
func ParseKind(s string) (ErrorKind, bool) {
	k := ErrorKind(s)
	_, ok := knownKinds[k]
	return k, ok
}

// CheckinError is a typed check-in failure. errors.Is matches on Kind, so
// callers compare against the sentinels below.
type CheckinError struct {
	Kind   ErrorKind
	Detail string
}

func (e *CheckinError) Error() string {
	msg := knownKinds[e.Kind]
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Is matches any *CheckinError of the same kind.
func (e *CheckinError) Is(target error) bool {
	t, ok := target.(*CheckinError)
	return ok && t.Kind == e.Kind
}

// Reject builds a CheckinError with an optional formatted detail.
func Reject(kind ErrorKind, format string, args ...any) *CheckinError {
	e := &CheckinError{Kind: kind}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

var (
	ErrCheckpointNotFound = &CheckinError{Kind: KindCheckpointNotFound}
	ErrRateLimited        = &CheckinError{Kind: KindRateLimited}
	ErrTooFast            = &CheckinError{Kind: KindTooFast}
	ErrAlreadyCheckedIn   = &CheckinError{Kind: KindAlreadyCheckedIn}
	ErrOutOfRange         = &CheckinError{Kind: KindOutOfRange}
	ErrMissingCode        = &CheckinError{Kind: KindMissingCode}
	ErrInvalidCode        = &CheckinError{Kind: KindInvalidCode}
	ErrTransient          = &CheckinError{Kind: KindTransient}
)
