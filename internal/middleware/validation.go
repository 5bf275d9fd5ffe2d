package middleware

import (
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionIDKey is the fiber.Locals key holding the validated session ID.
const SessionIDKey = "validated_session_id"

// ValidationMiddleware validates path parameters before the handler runs.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateSessionID checks the :id route parameter and stores it under
// SessionIDKey.
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateSessionID(id); len(errs) > 0 {
			return errs // rendered by ErrorHandler
		}
		c.Locals(SessionIDKey, id)
		return c.Next()
	}
}

// SessionID returns the ID stored by ValidateSessionID, falling back to the
// raw route parameter.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}
