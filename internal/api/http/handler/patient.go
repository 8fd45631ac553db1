package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/gateway"
	"github.com/Alijeyrad/hospital_backend/internal/hospital"
	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type PatientHandler struct {
	st *store.Store
}

func NewPatientHandler(st *store.Store) *PatientHandler {
	return &PatientHandler{st: st}
}

// mapStoreError turns a failed mutation into the right HTTP response. Every
// store failure is an upstream request failure; anything else is a bug.
func mapStoreError(c fiber.Ctx, err error) error {
	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) {
		return badGateway(c, reqErr.Message)
	}
	return internalError(c)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	return ok(c, h.st.Patients())
}

// GET /patients/search?q=
func (h *PatientHandler) Search(c fiber.Ctx) error {
	results, err := h.st.SearchPatients(c.Context(), c.Query("q"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return ok(c, results)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var req hospital.NewPatient
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid patient payload")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	p, err := h.st.AddPatient(c.Context(), req)
	if err != nil {
		return mapStoreError(c, err)
	}
	return created(c, p)
}

// PUT /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	var p hospital.Patient
	if err := c.Bind().JSON(&p); err != nil {
		return badRequest(c, "invalid patient payload")
	}
	p.ID = c.Params("id")
	if p.ID == "" {
		return badRequest(c, "patient id is required")
	}

	updated, err := h.st.UpdatePatient(c.Context(), p)
	if err != nil {
		return mapStoreError(c, err)
	}
	return ok(c, updated)
}
