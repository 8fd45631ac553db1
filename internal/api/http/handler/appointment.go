package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/hospital"
	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type AppointmentHandler struct {
	st *store.Store
}

func NewAppointmentHandler(st *store.Store) *AppointmentHandler {
	return &AppointmentHandler{st: st}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	return ok(c, h.st.Appointments())
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var req hospital.NewAppointment
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid appointment payload")
	}
	if req.PatientID == "" || req.DoctorID == "" {
		return badRequest(c, "patientId and doctorId are required")
	}

	a, err := h.st.AddAppointment(c.Context(), req)
	if err != nil {
		return mapStoreError(c, err)
	}
	return created(c, a)
}

// PUT /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	var a hospital.Appointment
	if err := c.Bind().JSON(&a); err != nil {
		return badRequest(c, "invalid appointment payload")
	}
	a.ID = c.Params("id")
	if a.ID == "" {
		return badRequest(c, "appointment id is required")
	}

	updated, err := h.st.UpdateAppointment(c.Context(), a)
	if err != nil {
		return mapStoreError(c, err)
	}
	return ok(c, updated)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "appointment id is required")
	}

	if err := h.st.CancelAppointment(c.Context(), id); err != nil {
		return mapStoreError(c, err)
	}
	return ok(c, fiber.Map{"id": id, "status": hospital.AppointmentCancelled})
}
