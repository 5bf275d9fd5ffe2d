package handler

import (
	"strconv"
	"time"

	"studymate/internal/domain"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultWait = 10 * time.Second
	maxWait     = 30 * time.Second
)

// parseBody decodes the JSON body into req and validates it.
func parseBody(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewInvalidInputError("Invalid request body").WithContext("detail", err.Error())
	}
	return v.Struct(req)
}

// waitParam reads the optional ?wait long-poll parameter. "true" waits the
// default time, a duration such as "5s" waits that long, capped at maxWait.
func waitParam(c *fiber.Ctx) (time.Duration, error) {
	raw := c.Query("wait")
	if raw == "" {
		return 0, nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		if b {
			return defaultWait, nil
		}
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("wait", raw)}
	}
	if d > maxWait {
		d = maxWait
	}
	return d, nil
}

// indexParam reads a non-negative integer route parameter.
func indexParam(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(name, raw)}
	}
	return i, nil
}
