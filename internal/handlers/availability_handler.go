package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Availability returns the per-day booking calendar for [from, to] inclusive.
// Defaults to the next 30 days when no range is given.
func (h *BookingHandler) Availability(c *fiber.Ctx) error {
	fromParam := c.Query("from")
	toParam := c.Query("to")

	from := h.today()
	if fromParam != "" {
		parsed, err := parseDate(fromParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be a YYYY-MM-DD date"})
		}
		from = parsed
	}
	to := from.AddDate(0, 0, 29)
	if toParam != "" {
		parsed, err := parseDate(toParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be a YYYY-MM-DD date"})
		}
		to = parsed
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must not be before from"})
	}

	days, err := h.service.Availability(c.Context(), from, to)
	if err != nil {
		return mapBookingError(c, err)
	}

	return c.JSON(fiber.Map{"days": days})
}

func (h *BookingHandler) today() time.Time {
	year, month, day := h.clock.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
