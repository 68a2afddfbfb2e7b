package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/preview"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

type PreviewHandler struct{}

func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{}
}

// Preview renders the draft once per requested channel, or the empty state
// when no channel is given.
func (h *PreviewHandler) Preview(c *fiber.Ctx) error {
	var req transfer.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse request")
	}

	channels, err := catalog.ParseChannels(req.Channels)
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := preview.Input{
		Placement: catalog.Placement(req.Placement),
		Caption:   req.Caption,
		Media:     req.Media,
		MediaKind: req.MediaKind,
		Author:    req.Author,
	}
	if p, err := catalog.ParsePlacement(req.Placement); err == nil {
		in.Placement = p
	}

	var nodes []preview.Node
	if len(channels) == 0 {
		nodes = []preview.Node{preview.Render(in)}
	} else {
		nodes = preview.RenderAll(channels, in)
	}
	return c.Status(fiber.StatusOK).JSON(transfer.PreviewResponse{Previews: nodes})
}
