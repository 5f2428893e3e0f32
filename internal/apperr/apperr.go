// Package apperr carries the error taxonomy every handler speaks:
// bad request, unauthenticated, forbidden, not found, conflict, server.
// Handlers return these as plain errors and the fiber ErrorHandler turns
// them into a status code plus a JSON body.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindServer
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "unauthenticated"}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "forbidden"}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Server wraps an unexpected storage or invariant failure. The wrapped
// error stays out of the response body.
func Server(err error) *Error {
	return &Error{Kind: KindServer, Message: "internal server error", Err: err}
}

// ErrorHandler is installed as the fiber app's ErrorHandler. Every error
// a handler returns funnels through here exactly once.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
