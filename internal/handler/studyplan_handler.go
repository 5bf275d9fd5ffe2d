package handler

import (
	"studymate/internal/dto"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type StudyPlanHandler struct {
	service   service.StudyPlanService
	validator *validation.Validator
}

func NewStudyPlanHandler(service service.StudyPlanService, v *validation.Validator) *StudyPlanHandler {
	return &StudyPlanHandler{service: service, validator: v}
}

// GetStudyPlan godoc
// @Summary Get the study plan page
// @Tags study-plan
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param wait query string false "Long-poll until the page settles: true or a duration such as 5s, capped at 30s"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/study-plan [get]
func (h *StudyPlanHandler) GetStudyPlan(c *fiber.Ctx) error {
	wait, err := waitParam(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetStudyPlan(c.UserContext(), middleware.SessionID(c), wait)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateNotes godoc
// @Summary Edit study notes
// @Tags study-plan
// @Accept json
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param request body dto.StudyNotesRequest true "Notes"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/study-plan/notes [put]
func (h *StudyPlanHandler) UpdateNotes(c *fiber.Ctx) error {
	var req dto.StudyNotesRequest
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
// @Summary Generate a study plan
// @Description Starts the simulated generation of a five-step plan. Notes need at least 50 characters.
// @Tags study-plan
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 202 {object} dto.StudyPlanResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/study-plan/generate [post]
func (h *StudyPlanHandler) Generate(c *fiber.Ctx) error {
	resp, err := h.service.Generate(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// CompleteStep godoc
// @Summary Complete a step
// @Description Idempotent. celebrate is true only on the call that completes the last pending step.
// @Tags study-plan
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param index path int true "Step index, from 0"
// @Success 200 {object} dto.StepCompleteResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/study-plan/steps/{index}/complete [post]
func (h *StudyPlanHandler) CompleteStep(c *fiber.Ctx) error {
	index, err := indexParam(c, "index")
	if err != nil {
		return err
	}
	resp, err := h.service.CompleteStep(c.UserContext(), middleware.SessionID(c), index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Reset the study plan
// @Description Drops the plan and the notes.
// @Tags study-plan
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/study-plan/reset [post]
func (h *StudyPlanHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.service.Reset(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
