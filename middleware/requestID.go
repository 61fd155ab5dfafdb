package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the locals key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestID tags every request with a UUID for log correlation, echoed back
// in the X-Request-ID header.
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
	}

	c.Locals(RequestIDKey, id)
	c.Set("X-Request-ID", id)
	return c.Next()
}
