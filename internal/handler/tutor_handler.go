package handler

import (
	"studymate/internal/dto"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TutorHandler struct {
	service   service.TutorService
	validator *validation.Validator
}

func NewTutorHandler(service service.TutorService, v *validation.Validator) *TutorHandler {
	return &TutorHandler{service: service, validator: v}
}

// GetTutor godoc
// @Summary Get the tutor transcript
// @Tags tutor
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param wait query string false "Long-poll until the page settles: true or a duration such as 5s, capped at 30s"
// @Success 200 {object} dto.TutorResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/tutor [get]
func (h *TutorHandler) GetTutor(c *fiber.Ctx) error {
	wait, err := waitParam(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetTutor(c.UserContext(), middleware.SessionID(c), wait)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SendMessage godoc
// @Summary Send a message to the tutor
// @Description Appends the message and schedules one reply. Refused while the tutor is typing.
// @Tags tutor
// @Accept json
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 202 {object} dto.TutorResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/tutor/messages [post]
func (h *TutorHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.SendMessage(c.UserContext(), middleware.SessionID(c), req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}
