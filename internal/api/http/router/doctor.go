package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, dh *handler.DoctorHandler) {
	api.Get("/doctors", dh.List)
}
