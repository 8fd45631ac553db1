package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type InventoryHandler struct {
	st *store.Store
}

func NewInventoryHandler(st *store.Store) *InventoryHandler {
	return &InventoryHandler{st: st}
}

// GET /inventory
func (h *InventoryHandler) List(c fiber.Ctx) error {
	return ok(c, h.st.Inventory())
}
