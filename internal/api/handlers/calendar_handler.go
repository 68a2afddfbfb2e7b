package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/service"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

type CalendarHandler struct {
	s service.ScheduleService
}

func NewCalendarHandler(s service.ScheduleService) *CalendarHandler {
	return &CalendarHandler{s: s}
}

// Month serves /api/calendar?year=&month=, defaulting to the current month.
func (h *CalendarHandler) Month(c *fiber.Ctx) error {
	userID := GetUserID(c)
	today := h.s.Today()

	year := c.QueryInt("year", today.Year())
	month := c.QueryInt("month", int(today.Month()))
	if month < 1 || month > 12 {
		return badRequest(c, "month must be between 1 and 12")
	}

	m, err := h.s.Month(c.UserContext(), userID, year, time.Month(month))
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.CalendarResponse{
		Month: m,
		Today: calendar.DateKey(today),
	})
}
