package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerInventoryRoutes(api fiber.Router, ih *handler.InventoryHandler) {
	api.Get("/inventory", ih.List)
}
