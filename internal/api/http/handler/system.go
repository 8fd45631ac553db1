package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/hospital_backend/internal/store"
)

type SystemHandler struct {
	st *store.Store
}

func NewSystemHandler(st *store.Store) *SystemHandler {
	return &SystemHandler{st: st}
}

// GET /system/status
//
// Reports whether the store is serving live upstream data or the bundled
// offline dataset, plus per-collection loading flags.
func (h *SystemHandler) Status(c fiber.Ctx) error {
	loading := fiber.Map{}
	for _, r := range store.Resources {
		loading[string(r)] = h.st.Loading(r)
	}
	return ok(c, fiber.Map{
		"degraded":  h.st.Degraded(),
		"lastError": h.st.LastError(),
		"loading":   loading,
	})
}
