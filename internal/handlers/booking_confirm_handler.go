package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/booking"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/services"
)

type confirmBookingRequest struct {
	PackageID    string         `json:"package_id"`
	Participants int            `json:"participants"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Contact      contactPayload `json:"contact"`
	TotalPrice   int64          `json:"total_price"`
	SessionID    *string        `json:"session_id"`
}

// ConfirmBooking records a paid booking. Called by the payment-webhook glue
// once the gateway reports the session completed.
func (h *BookingHandler) ConfirmBooking(c *fiber.Ctx) error {
	var req confirmBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date must be a YYYY-MM-DD date"})
	}
	input := services.ConfirmBookingInput{
		PackageID:    req.PackageID,
		Participants: req.Participants,
		StartDate:    startDate,
		TotalPrice:   req.TotalPrice,
		SessionID:    req.SessionID,
		Contact: booking.Contact{
			Email:     req.Contact.Email,
			FirstName: req.Contact.FirstName,
			LastName:  req.Contact.LastName,
			Phone:     req.Contact.Phone,
		},
	}
	if strings.TrimSpace(req.EndDate) != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be a YYYY-MM-DD date"})
		}
		input.EndDate = endDate
	}

	record, err := h.service.ConfirmBooking(c.Context(), input)
	if err != nil {
		return mapBookingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"booking": record})
}
