package handler

import (
	"studymate/internal/dashboard"
	"studymate/internal/dto"
	"studymate/internal/middleware"
	"studymate/internal/navigation"
	"studymate/internal/service"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler serves session lifecycle, the menu and the static pages.
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

func NewSessionHandler(service service.SessionService, v *validation.Validator) *SessionHandler {
	return &SessionHandler{service: service, validator: v}
}

// GetNavigation godoc
// @Summary List routes and index features
// @Description Returns the navigation routes and the feature cards of the landing page.
// @Tags navigation
// @Produce json
// @Success 200 {object} dto.NavigationResponse
// @Router /navigation [get]
func (h *SessionHandler) GetNavigation(c *fiber.Ctx) error {
	return c.JSON(dto.NavigationResponse{
		Routes:   navigation.Routes(),
		Features: navigation.Features(),
	})
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Returns the mock study statistics, weekly activity, goals and achievements.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *SessionHandler) GetDashboard(c *fiber.Ctx) error {
	return c.JSON(dto.NewDashboardResponse(dashboard.Get()))
}

// CreateSession godoc
// @Summary Create a session
// @Description Opens a workspace holding one instance of every page.
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	resp, err := h.service.CreateSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CloseSession godoc
// @Summary Close a session
// @Description Closes the workspace and cancels every pending generation.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.service.CloseSession(c.UserContext(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMenu godoc
// @Summary Get the mobile menu
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.MenuResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/menu [get]
func (h *SessionHandler) GetMenu(c *fiber.Ctx) error {
	resp, err := h.service.GetMenu(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleMenu godoc
// @Summary Toggle the mobile menu
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.MenuResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/menu/toggle [post]
func (h *SessionHandler) ToggleMenu(c *fiber.Ctx) error {
	resp, err := h.service.ToggleMenu(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectRoute godoc
// @Summary Select a route
// @Description Marks the route active and closes the menu. Unknown routes are refused.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param request body dto.SelectRouteRequest true "Route"
// @Success 200 {object} dto.MenuResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/menu/select [post]
func (h *SessionHandler) SelectRoute(c *fiber.Ctx) error {
	var req dto.SelectRouteRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.SelectRoute(c.UserContext(), middleware.SessionID(c), req.Href)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
