package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/service"
)

type PillarHandler struct {
	s service.PillarService
}

func NewPillarHandler(s service.PillarService) *PillarHandler {
	return &PillarHandler{s: s}
}

func (h *PillarHandler) ListPillars(c *fiber.Ctx) error {
	pillars, err := h.s.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pillars)
}
