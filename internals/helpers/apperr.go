package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error taxonomy

   Services return one of these kinds; controllers hand the error to
   FromError which picks the status code and keeps internals out of
   the response body.
=================================*/

type ErrKind int

const (
	KindValidation ErrKind = iota // malformed/missing input
	KindNotFound                  // missing aggregate by id
	KindForbidden                 // actor may not act on the aggregate
	KindConflict                  // operation invalid for current status
	KindDomainRule                // business rule violated (no rooms, period gate, ...)
	KindInternal
)

type AppError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidation(msg string) error { return &AppError{Kind: KindValidation, Message: msg} }
func NewNotFound(msg string) error   { return &AppError{Kind: KindNotFound, Message: msg} }
func NewForbidden(msg string) error  { return &AppError{Kind: KindForbidden, Message: msg} }
func NewConflict(msg string) error   { return &AppError{Kind: KindConflict, Message: msg} }
func NewDomainRule(msg string) error { return &AppError{Kind: KindDomainRule, Message: msg} }

func NewInternal(err error) error {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// FromError writes the envelope for a service error.
func FromError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if !errors.As(err, &ae) {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch ae.Kind {
	case KindValidation:
		return Error(c, fiber.StatusBadRequest, ae.Message)
	case KindNotFound:
		return Error(c, fiber.StatusNotFound, ae.Message)
	case KindForbidden:
		return Error(c, fiber.StatusForbidden, ae.Message)
	case KindConflict:
		return Error(c, fiber.StatusConflict, ae.Message)
	case KindDomainRule:
		return Error(c, fiber.StatusUnprocessableEntity, ae.Message)
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), ae.Err)
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
