// Package analytics derives decision-oriented summaries (health bands,
// rankings, cluster matches, risk reports, company profiles) from raw
// KIEP records.
package analytics

import (
	"errors"
	"fmt"
)

// Kind classifies a tool failure. Every failure crossing the tool
// boundary is one of these; raw transport faults never escape.
type Kind string

const (
	// KindNotFound means the requested key has no matching record.
	KindNotFound Kind = "not_found"
	// KindValidation means the input was malformed and no fetch was attempted.
	KindValidation Kind = "validation"
	// KindUpstream means a required fetch failed or timed out.
	KindUpstream Kind = "upstream_unavailable"
	// KindEmpty means the request was valid but no qualifying data remained.
	KindEmpty Kind = "empty_result"
)

// Error is a structured tool failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func notFoundErr(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func validationErr(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func upstreamErr(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), cause: cause}
}

func emptyErr(format string, args ...any) *Error {
	return &Error{Kind: KindEmpty, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or "" if err is not an analytics Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
