package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/availability"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/booking"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/checkout"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/clock"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/models"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/pricing"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPackageNotFound    = errors.New("package not found")
	ErrDateUnavailable    = errors.New("date window fully booked")
	ErrGatewayUnavailable = errors.New("payment gateway failure")
)

// ValidationError carries the full reason list for a rejected booking so the
// HTTP layer can show every failing rule at once.
type ValidationError struct {
	Result booking.Result
}

func (e *ValidationError) Error() string {
	codes := make([]string, 0, len(e.Result.Errors))
	for _, code := range e.Result.Errors {
		codes = append(codes, string(code))
	}
	return "booking rejected: " + strings.Join(codes, ", ")
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, req checkout.SessionRequest) (*checkout.Session, error)
}

type bookingStore interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]models.BookingRecord, error)
	Append(ctx context.Context, input repository.CreateBookingInput) (*models.BookingRecord, error)
}

type BookingService struct {
	catalog       *catalog.Catalog
	pricingCfg    pricing.Config
	checkoutCfg   checkout.Config
	dailyCapacity int
	gateway       CheckoutGateway
	bookingRepo   bookingStore
	clock         clock.Clock
}

func NewBookingService(
	cat *catalog.Catalog,
	pricingCfg pricing.Config,
	checkoutCfg checkout.Config,
	dailyCapacity int,
	gateway CheckoutGateway,
	bookingRepo *repository.BookingRepository,
	clk clock.Clock,
) *BookingService {
	return &BookingService{
		catalog:       cat,
		pricingCfg:    pricingCfg,
		checkoutCfg:   checkoutCfg,
		dailyCapacity: dailyCapacity,
		gateway:       gateway,
		bookingRepo:   bookingRepo,
		clock:         clk,
	}
}

// Checkout validates a candidate booking and, when it passes, opens a payment
// session for it. The capacity check runs against a snapshot of the record
// store; two concurrent checkouts for the same window can both pass it, so
// the store's write path is where capacity must be enforced atomically.
func (s *BookingService) Checkout(ctx context.Context, req booking.Request) (*checkout.Session, error) {
	pkg, found := s.catalog.Lookup(req.PackageID)
	if found && req.EndDate.IsZero() {
		req.EndDate = req.StartDate.AddDate(0, 0, pkg.DurationDays)
	}

	now := s.clock.Now()
	result := booking.Validate(req, s.catalog, s.pricingCfg, now)
	if result.Has(booking.ReasonPackageNotFound) {
		return nil, ErrPackageNotFound
	}
	if !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	breakdown := pricing.Compute(s.pricingCfg, pkg, req.Participants)

	existing, err := s.bookingRepo.ListBetween(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	occupied := availability.Compute(existing, req.StartDate, req.EndDate.AddDate(0, 0, -1), s.dailyCapacity)
	if !availability.CanAccommodate(occupied, breakdown.Quantity) {
		return nil, ErrDateUnavailable
	}

	session, err := s.gateway.CreateSession(ctx, checkout.BuildSessionRequest(req, pkg, breakdown, s.checkoutCfg, now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return session, nil
}

// Availability reports per-day remaining capacity over [from, to] inclusive.
func (s *BookingService) Availability(ctx context.Context, from, to time.Time) ([]availability.Day, error) {
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	records, err := s.bookingRepo.ListBetween(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return availability.Compute(records, from, to, s.dailyCapacity), nil
}

type ConfirmBookingInput struct {
	PackageID    string
	Participants int
	StartDate    time.Time
	EndDate      time.Time
	Contact      booking.Contact
	TotalPrice   int64
	SessionID    *string
}

// ConfirmBooking appends a paid booking to the record store. It is called by
// the payment-webhook glue after the gateway reports a completed session, so
// it only sanity-checks shape; the full validator already ran at checkout.
func (s *BookingService) ConfirmBooking(ctx context.Context, input ConfirmBookingInput) (*models.BookingRecord, error) {
	pkg, found := s.catalog.Lookup(input.PackageID)
	if !found {
		return nil, ErrPackageNotFound
	}
	if input.Participants < 1 || input.TotalPrice <= 0 {
		return nil, ErrInvalidInput
	}
	if input.EndDate.IsZero() {
		input.EndDate = input.StartDate.AddDate(0, 0, pkg.DurationDays)
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrInvalidInput
	}

	record, err := s.bookingRepo.Append(ctx, repository.CreateBookingInput{
		Reference:    uuid.NewString(),
		PackageID:    input.PackageID,
		Participants: input.Participants,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Email:        strings.TrimSpace(input.Contact.Email),
		FirstName:    strings.TrimSpace(input.Contact.FirstName),
		LastName:     strings.TrimSpace(input.Contact.LastName),
		Phone:        strings.TrimSpace(input.Contact.Phone),
		TotalPrice:   input.TotalPrice,
		Status:       "confirmed",
		SessionID:    input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("append booking: %w", err)
	}
	return record, nil
}
