package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, ph *handler.PatientHandler) {
	patients := api.Group("/patients")

	patients.Get("/", ph.List)
	patients.Get("/search", ph.Search)
	patients.Post("/", ph.Create)
	patients.Put("/:id", ph.Update)
}
