package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessage(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{fiber.StatusOK, MessageOK},
		{fiber.StatusBadRequest, MessageBadRequest},
		{fiber.StatusNotFound, MessageNotFound},
		{fiber.StatusUnprocessableEntity, MessageUnprocessableEntity},
		{fiber.StatusServiceUnavailable, MessageInternalServerError},
		{fiber.StatusInternalServerError, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}
	for _, tc := range cases {
		if got := defaultMessage(tc.status); got != tc.want {
			t.Fatalf("defaultMessage(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
