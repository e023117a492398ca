package helper

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusFor(t *testing.T, serviceErr error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return FromError(c, serviceErr)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestFromErrorStatusCodes(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, statusFor(t, NewValidation("bad input")))
	assert.Equal(t, fiber.StatusNotFound, statusFor(t, NewNotFound("missing")))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, NewForbidden("nope")))
	assert.Equal(t, fiber.StatusConflict, statusFor(t, NewConflict("wrong state")))
	assert.Equal(t, fiber.StatusUnprocessableEntity, statusFor(t, NewDomainRule("no rooms")))
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(t, NewInternal(errors.New("boom"))))
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(t, errors.New("driver exploded")))
}
