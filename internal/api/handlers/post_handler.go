package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/service"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

type PostHandler struct {
	schedule service.ScheduleService
	posts    service.PostService
	pillars  service.PillarService
	timeout  time.Duration
}

func NewPostHandler(schedule service.ScheduleService, posts service.PostService, pillars service.PillarService, timeout time.Duration) *PostHandler {
	return &PostHandler{schedule: schedule, posts: posts, pillars: pillars, timeout: timeout}
}

func (h *PostHandler) SchedulePosts(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	channels, err := catalog.ParseChannels(req.Channels)
	if err != nil {
		return badRequest(c, err.Error())
	}

	draft := service.Draft{
		Channels:  channels,
		Placement: catalog.Placement(req.Placement),
		MediaRefs: req.MediaRefs,
		MediaKind: req.MediaKind,
		Caption:   req.Caption,
		Date:      req.ScheduledDate,
		Time:      req.ScheduledTime,
		PillarID:  req.PillarID,
		AsDraft:   req.AsDraft,
	}
	if req.Placement != "" {
		if p, err := catalog.ParsePlacement(req.Placement); err == nil {
			draft.Placement = p
		}
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	// local checks first so a bad draft never costs a query
	if err := h.schedule.Validate(draft); err != nil {
		return sendError(c, err)
	}
	if h.pillars != nil {
		if err := h.pillars.Check(ctx, userID, draft.PillarID); err != nil {
			return sendError(c, err)
		}
	}

	res, err := h.schedule.SubmitSchedule(ctx, userID, draft)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(transfer.ScheduleResponse{
		BatchID: res.BatchID,
		Created: res.Created,
		Posts:   res.Posts,
		Stale:   res.Stale,
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := c.QueryInt("id", 0)

	if postID != 0 {
		post, err := h.posts.PostInfo(c.UserContext(), int64(postID), userID)
		if err != nil {
			return sendError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}

	posts, err := h.schedule.ListPosts(c.UserContext(), userID)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := c.QueryInt("id", 0)

	if err := h.posts.Remove(c.UserContext(), userID, int64(postID)); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
