package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, ah *handler.AppointmentHandler) {
	appointments := api.Group("/appointments")

	appointments.Get("/", ah.List)
	appointments.Post("/", ah.Create)
	appointments.Put("/:id", ah.Update)
	appointments.Post("/:id/cancel", ah.Cancel)
}
