package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type DoctorHandler struct {
	st *store.Store
}

func NewDoctorHandler(st *store.Store) *DoctorHandler {
	return &DoctorHandler{st: st}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	return ok(c, h.st.Doctors())
}
