package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/availability"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/booking"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/checkout"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/clock"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/models"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/services"
)

const dateLayout = "2006-01-02"

type bookingApplicationService interface {
	Checkout(ctx context.Context, req booking.Request) (*checkout.Session, error)
	Availability(ctx context.Context, from, to time.Time) ([]availability.Day, error)
	ConfirmBooking(ctx context.Context, input services.ConfirmBookingInput) (*models.BookingRecord, error)
}

type BookingHandler struct {
	service bookingApplicationService
	clock   clock.Clock
}

func NewBookingHandler(service *services.BookingService, clk clock.Clock) *BookingHandler {
	return &BookingHandler{service: service, clock: clk}
}

type contactPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type checkoutRequest struct {
	PackageID         string         `json:"package_id"`
	Participants      int            `json:"participants"`
	StartDate         string         `json:"start_date"`
	EndDate           string         `json:"end_date"`
	ClaimedTotalPrice float64        `json:"claimed_total_price"`
	Contact           contactPayload `json:"contact"`
}

// Checkout accepts a candidate booking, runs the validator, and returns the
// payment session to redirect the client to.
func (h *BookingHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date must be a YYYY-MM-DD date"})
	}
	var endDate time.Time
	if strings.TrimSpace(req.EndDate) != "" {
		endDate, err = parseDate(req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be a YYYY-MM-DD date"})
		}
	}

	session, err := h.service.Checkout(c.Context(), booking.Request{
		PackageID:    req.PackageID,
		Participants: req.Participants,
		StartDate:    startDate,
		EndDate:      endDate,
		ClaimedTotal: req.ClaimedTotalPrice,
		Contact: booking.Contact{
			Email:     req.Contact.Email,
			FirstName: req.Contact.FirstName,
			LastName:  req.Contact.LastName,
			Phone:     req.Contact.Phone,
		},
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return c.JSON(fiber.Map{"session_id": session.ID, "url": session.URL})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func mapBookingError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Booking validation failed",
			"reasons": validationErr.Result.Errors,
		})
	case errors.Is(err, services.ErrPackageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	case errors.Is(err, services.ErrDateUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Requested dates are fully booked"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrGatewayUnavailable):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process booking request"})
	}
}
