package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/checkout"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/clock"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/config"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/handlers"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/pricing"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/repository"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	if cfg.DailyCapacity < 1 {
		return fmt.Errorf("daily capacity must be at least 1, got %d", cfg.DailyCapacity)
	}

	cat := catalog.Default()
	bookingRepo := repository.NewBookingRepository(db)
	gateway := checkout.NewStripeGateway(cfg.StripeSecretKey)
	clk := clock.NewSystem()

	bookingService := services.NewBookingService(
		cat,
		pricing.Config{
			InstructorRate: cfg.InstructorRate,
			DailyFixedCost: cfg.DailyFixedCost,
		},
		checkout.Config{
			SuccessURL: cfg.CheckoutSuccessURL,
			CancelURL:  cfg.CheckoutCancelURL,
			Locale:     cfg.CheckoutLocale,
		},
		cfg.DailyCapacity,
		gateway,
		bookingRepo,
		clk,
	)

	catalogHandler := handlers.NewCatalogHandler(cat)
	bookingHandler := handlers.NewBookingHandler(bookingService, clk)

	api := app.Group("/api/v1")

	packages := api.Group("/packages")
	packages.Get("", catalogHandler.ListPackages)
	packages.Get("/:id", catalogHandler.GetPackage)

	api.Get("/availability", bookingHandler.Availability)
	api.Post("/checkout", bookingHandler.Checkout)
	api.Post("/bookings", bookingHandler.ConfirmBooking)

	return nil
}
