package handler

import (
	"errors"

	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClockingHandler struct {
	service service.ClockingService
}

func NewClockingHandler(s service.ClockingService) *ClockingHandler {
	return &ClockingHandler{service: s}
}

// GetStatus returns the caller's latest session and whether they are stopped
// GET /api/v1/store/clocking
func (h *ClockingHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.service.GetStatus(getUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(status)
}

// GetHistory lists the caller's clocking rows, newest first
// GET /api/v1/store/clocking/history
func (h *ClockingHandler) GetHistory(c *fiber.Ctx) error {
	clockings, err := h.service.GetHistory(getUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(clockings)
}

// Start opens a session
// POST /api/v1/store/clocking/start
func (h *ClockingHandler) Start(c *fiber.Ctx) error {
	clocking, err := h.service.Start(getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyClockedIn) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Clocked in", "data": clocking})
}

// StopRequest optionally names a specific session to stop
type StopRequest struct {
	ClockID *string `json:"clock_id"`
}

// Stop closes the open session
// POST /api/v1/store/clocking/stop
func (h *ClockingHandler) Stop(c *fiber.Ctx) error {
	var req StopRequest
	// Body is optional; an empty body stops the latest open session.
	_ = c.BodyParser(&req)

	clocking, err := h.service.Stop(getUserID(c), req.ClockID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOpenClocking), errors.Is(err, service.ErrClockingNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrClockingNotYours):
			return c.Status(403).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrClockingFinished):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Clocked out", "data": clocking})
}
