package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/service"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListChannels(c *fiber.Ctx) error {
	channels := catalog.Channels()
	out := make([]transfer.ChannelInfo, 0, len(channels))
	for _, ch := range channels {
		placements := catalog.SupportedPlacements(ch)
		info := transfer.ChannelInfo{
			Channel:    string(ch),
			Placements: make([]string, 0, len(placements)),
			Labels:     make(map[string]string, len(placements)),
		}
		for _, p := range placements {
			info.Placements = append(info.Placements, string(p))
			info.Labels[string(p)] = catalog.LabelFor(ch, p)
		}
		out = append(out, info)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Placements returns the placement types every channel in ?channels=a,b
// supports. An empty selection yields an empty list; channels that share
// nothing are a 422.
func (h *CatalogHandler) Placements(c *fiber.Ctx) error {
	var names []string
	if raw := c.Query("channels"); raw != "" {
		names = strings.Split(raw, ",")
	}

	channels, err := catalog.ParseChannels(names)
	if err != nil {
		return badRequest(c, err.Error())
	}

	common, err := service.ResolvePlacements(channels)
	if err != nil {
		return sendError(c, err)
	}
	resp := transfer.PlacementsResponse{
		Channels:   make([]string, 0, len(channels)),
		Placements: make([]string, 0, len(common)),
	}
	for _, ch := range channels {
		resp.Channels = append(resp.Channels, string(ch))
	}
	for _, p := range common {
		resp.Placements = append(resp.Placements, string(p))
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
