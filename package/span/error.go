package span

import (
	"errors"
	"strings"
)

// Error is a chain of messages collected while an error travels outward
// through spans. Items[0] carries the root cause.
type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Span    *Span   `json:"-"`
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"error,omitempty"`
}

func (r *Error) Error() string {
	messages := make([]string, 0, len(r.Items)+1)
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Message != nil && *r.Items[i].Message != "" {
			messages = append(messages, *r.Items[i].Message)
		}
	}
	if cause := r.Unwrap(); cause != nil {
		messages = append(messages, cause.Error())
	}

	return strings.Join(messages, ": ")
}

func (r *Error) Unwrap() error {
	if len(r.Items) == 0 {
		return nil
	}

	return r.Items[0].Error
}

// Message returns the innermost message of the chain.
func (r *Error) Message() string {
	if len(r.Items) == 0 || r.Items[0].Message == nil {
		return ""
	}

	return *r.Items[0].Message
}

func NewError(span *Span, message string, err error) error {
	trace := NewCaller()
	if err == nil {
		return &Error{
			Items: []*ErrorItem{
				{
					Span:    span,
					Trace:   trace,
					Message: &message,
					Error:   nil,
				},
			},
		}
	}

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Span:    span,
			Trace:   trace,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Items: []*ErrorItem{
			{
				Span:    span,
				Trace:   trace,
				Message: &message,
				Error:   err,
			},
		},
	}
}
