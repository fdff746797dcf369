package viewer

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SkyPlay-Code/centipede/pkg/bestiary"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// handleIndex serves the embedded canvas page.
func (s *Server) handleIndex(c *fiber.Ctx) error {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "front end not embedded",
		})
	}
	c.Type("html")
	return c.Send(page)
}

// handleState returns the server summary.
func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.stateData())
}

// PresetInfo describes one registered preset.
type PresetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handlePresets returns every registered preset with its description.
func (s *Server) handlePresets(c *fiber.Ctx) error {
	descs := s.registry.ListWithDescriptions()

	infos := make([]PresetInfo, 0, len(descs))
	for _, name := range s.registry.List() {
		infos = append(infos, PresetInfo{Name: name, Description: descs[name]})
	}
	return c.JSON(fiber.Map{
		"presets": infos,
	})
}

// handleStats returns the live telemetry window without flushing it.
func (s *Server) handleStats(c *fiber.Ctx) error {
	stats := s.collector.Snapshot()
	return c.JSON(fiber.Map{
		"ticks":         stats.Ticks,
		"tick_mean_ms":  float64(stats.TickMean) / float64(time.Millisecond),
		"tick_max_ms":   float64(stats.TickMax) / float64(time.Millisecond),
		"speed_mean":    stats.SpeedMean,
		"speed_stddev":  stats.SpeedStddev,
		"activity_mean": stats.ActivityMean,
		"uptime_s":      stats.Uptime.Seconds(),
	})
}

// handleSwitchPreset queues a preset switch for the next tick.
func (s *Server) handleSwitchPreset(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := s.requestPreset(name); err != nil {
		if errors.Is(err, bestiary.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"error": "unknown preset: " + name,
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"preset": name,
	})
}

// ResetRequest is the request body for a reset. Coordinates default
// to the arena center.
type ResetRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// handleReset queues a head teleport for the next tick.
func (s *Server) handleReset(c *fiber.Ctx) error {
	var req ResetRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "malformed body",
		})
	}

	x, y := float64(arenaWidth)/2, float64(arenaHeight)/2
	if req.X != nil {
		x = *req.X
	}
	if req.Y != nil {
		y = *req.Y
	}

	s.requestReset(geom.V(x, y))
	return c.JSON(fiber.Map{
		"x": x,
		"y": y,
	})
}
