package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/service"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

func GetUserID(c *fiber.Ctx) int64 {
	raw, _ := c.Locals("user_id").(string)
	userID, _ := strconv.ParseInt(raw, 10, 64)
	return userID
}

// sendError maps service errors onto HTTP statuses. Fan-out failures carry
// the outcome of every channel so the client can show what was undone.
func sendError(c *fiber.Ctx, err error) error {
	var fe *service.FanOutError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadGateway).JSON(fanOutFailure(fe))
	}

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		status := fiber.StatusBadRequest
		if errors.Is(err, catalog.ErrNoCommonPlacement) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(transfer.ErrorResponse{Error: ve.Error(), Field: ve.Field})
	}

	if errors.Is(err, service.ErrPostNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(transfer.ErrorResponse{Error: err.Error()})
	}

	slog.Error(err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(transfer.ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(transfer.ErrorResponse{Error: msg})
}

func fanOutFailure(fe *service.FanOutError) transfer.ScheduleFailure {
	out := transfer.ScheduleFailure{
		Error:    fe.Error(),
		BatchID:  fe.BatchID,
		Outcomes: make([]transfer.ChannelOutcome, 0, len(fe.Outcomes)),
	}
	for _, o := range fe.Outcomes {
		oc := transfer.ChannelOutcome{
			Channel:    string(o.Channel),
			Placement:  o.Placement,
			PostID:     o.PostID,
			RolledBack: o.RolledBack,
		}
		if o.Err != nil {
			oc.Error = o.Err.Error()
		}
		if o.RollbackErr != nil {
			oc.RollbackErr = o.RollbackErr.Error()
		}
		out.Outcomes = append(out.Outcomes, oc)
	}
	return out
}
