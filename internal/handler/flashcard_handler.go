package handler

import (
	"studymate/internal/dto"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type FlashcardHandler struct {
	service   service.FlashcardService
	validator *validation.Validator
}

func NewFlashcardHandler(service service.FlashcardService, v *validation.Validator) *FlashcardHandler {
	return &FlashcardHandler{service: service, validator: v}
}

// GetFlashcards godoc
// @Summary Get the flashcard page
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param wait query string false "Long-poll until the page settles: true or a duration such as 5s, capped at 30s"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards [get]
func (h *FlashcardHandler) GetFlashcards(c *fiber.Ctx) error {
	wait, err := waitParam(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetFlashcards(c.UserContext(), middleware.SessionID(c), wait)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateNotes godoc
// @Summary Edit flashcard notes and language
// @Description Absent fields are left unchanged. The language applies to the next generation.
// @Tags flashcards
// @Accept json
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param request body dto.FlashcardNotesRequest true "Notes and language"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/notes [put]
func (h *FlashcardHandler) UpdateNotes(c *fiber.Ctx) error {
	var req dto.FlashcardNotesRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.UpdateNotes(c.UserContext(), middleware.SessionID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Generate godoc
// @Summary Generate a flashcard set
// @Description Starts the simulated generation of five cards. Notes need at least 50 characters.
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 202 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/generate [post]
func (h *FlashcardHandler) Generate(c *fiber.Ctx) error {
	resp, err := h.service.Generate(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// Next godoc
// @Summary Show the next card
// @Description Wraps around after the last card and hides the answer.
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/next [post]
func (h *FlashcardHandler) Next(c *fiber.Ctx) error {
	resp, err := h.service.Next(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Previous godoc
// @Summary Show the previous card
// @Description Wraps around before the first card and hides the answer.
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/previous [post]
func (h *FlashcardHandler) Previous(c *fiber.Ctx) error {
	resp, err := h.service.Previous(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Jump godoc
// @Summary Jump to a card
// @Tags flashcards
// @Accept json
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param request body dto.JumpRequest true "Card index"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/jump [post]
func (h *FlashcardHandler) Jump(c *fiber.Ctx) error {
	var req dto.JumpRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.JumpTo(c.UserContext(), middleware.SessionID(c), *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reveal godoc
// @Summary Flip the current card
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/reveal [post]
func (h *FlashcardHandler) Reveal(c *fiber.Ctx) error {
	resp, err := h.service.ToggleReveal(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Start a new set
// @Description Discards the deck and the notes.
// @Tags flashcards
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.FlashcardPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/flashcards/reset [post]
func (h *FlashcardHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.service.NewSet(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
