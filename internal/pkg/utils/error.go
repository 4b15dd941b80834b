package utils

import (
	"fmt"
	"strings"
)

// Error is an aggregate of independent errors, rendered as a bullet list
// under an optional prefix. Document loading and graph resolution collect
// per-item problems here instead of failing on the first one.
type Error struct {
	prefix string
	errors []string
}

func NewMultiError() *Error {
	return &Error{}
}

func (e *Error) Len() int {
	return len(e.errors)
}

func (e *Error) SetPrefix(prefix string) {
	e.prefix = prefix
}

func (e *Error) Add(err error) {
	if v, ok := err.(*Error); ok {
		for _, item := range v.Errors() {
			e.doAdd(item)
		}
	} else {
		e.doAdd(err.Error())
	}
}

func (e *Error) Errors() []string {
	return e.errors
}

// ErrorOrNil returns nil when no error was added.
func (e *Error) ErrorOrNil() error {
	if e == nil || len(e.errors) == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	msg := strings.Join(e.errors, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}

	return msg
}

func (e *Error) doAdd(err string) {
	err = strings.TrimLeft(err, "- ")
	err = fmt.Sprintf("- %s", err)
	e.errors = append(e.errors, err)
}
