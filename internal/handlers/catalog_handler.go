package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"packages": h.catalog.List()})
}

func (h *CatalogHandler) GetPackage(c *fiber.Ctx) error {
	pkg, found := h.catalog.Lookup(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}
	return c.JSON(fiber.Map{"package": pkg})
}
