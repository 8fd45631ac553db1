package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerBillRoutes(api fiber.Router, bh *handler.BillHandler) {
	bills := api.Group("/bills")

	bills.Get("/", bh.List)
	bills.Post("/", bh.Create)
	bills.Put("/:id/status", bh.UpdateStatus)
}
