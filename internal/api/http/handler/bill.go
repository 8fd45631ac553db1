package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/hospital"
	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type BillHandler struct {
	st *store.Store
}

func NewBillHandler(st *store.Store) *BillHandler {
	return &BillHandler{st: st}
}

// GET /bills
func (h *BillHandler) List(c fiber.Ctx) error {
	return ok(c, h.st.Bills())
}

// POST /bills
func (h *BillHandler) Create(c fiber.Ctx) error {
	var req hospital.NewBill
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid bill payload")
	}
	if req.PatientID == "" {
		return badRequest(c, "patientId is required")
	}

	b, err := h.st.AddBill(c.Context(), req)
	if err != nil {
		return mapStoreError(c, err)
	}
	return created(c, b)
}

type billStatusRequest struct {
	Status hospital.BillStatus `json:"status"`
}

// PUT /bills/:id/status
func (h *BillHandler) UpdateStatus(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "bill id is required")
	}

	var req billStatusRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid status payload")
	}
	switch req.Status {
	case hospital.BillPaid, hospital.BillPending, hospital.BillOverdue:
	default:
		return badRequest(c, "status must be paid, pending or overdue")
	}

	if err := h.st.UpdateBillStatus(c.Context(), id, req.Status); err != nil {
		return mapStoreError(c, err)
	}
	return ok(c, fiber.Map{"id": id, "status": req.Status})
}
