package store

import (
	"context"

	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

// Refresh loads all five collections from the upstream, strictly in order:
// patients, doctors, appointments, bills, inventory. The fetches run as one
// linear chain, not a fan-out, so a slow early fetch delays the later ones.
// The first failure anywhere in the chain aborts the rest and hands over to
// fallbackToSeed, which discards any collections already fetched in this
// pass. Refresh is not re-entrant; the caller runs it once at startup.
//
// In offline mode Refresh seeds from the bundled dataset and never touches
// the network.
func (s *Store) Refresh(ctx context.Context) error {
	if s.offline {
		s.logger.Info("store running in offline mode, seeding bundled dataset")
		s.applySeed("")
		return nil
	}

	s.setLoading(ResourcePatients, true)
	patients, err := s.gw.ListPatients(ctx)
	if err != nil {
		return s.fallbackToSeed(ctx, err)
	}
	s.replacePatients(patients)

	s.setLoading(ResourceDoctors, true)
	doctors, err := s.gw.ListDoctors(ctx)
	if err != nil {
		return s.fallbackToSeed(ctx, err)
	}
	s.replaceDoctors(doctors)

	s.setLoading(ResourceAppointments, true)
	appointments, err := s.gw.ListAppointments(ctx)
	if err != nil {
		return s.fallbackToSeed(ctx, err)
	}
	s.replaceAppointments(appointments)

	s.setLoading(ResourceBills, true)
	bills, err := s.gw.ListBills(ctx)
	if err != nil {
		return s.fallbackToSeed(ctx, err)
	}
	s.replaceBills(bills)

	s.setLoading(ResourceInventory, true)
	inventory, err := s.gw.ListInventory(ctx)
	if err != nil {
		return s.fallbackToSeed(ctx, err)
	}
	s.replaceInventory(inventory)

	s.mu.Lock()
	s.lastErr = ""
	s.degraded = false
	s.ready = true
	s.mu.Unlock()

	s.logger.Info("store refreshed from upstream",
		"patients", len(patients),
		"doctors", len(doctors),
		"appointments", len(appointments),
		"bills", len(bills),
		"inventory", len(inventory),
	)
	return nil
}

// fallbackToSeed is the named recovery policy for a failed refresh: every
// collection is replaced with the bundled dataset, including ones already
// fetched successfully in this pass, and all loading flags clear. The store
// keeps serving, so the error is recorded rather than returned.
func (s *Store) fallbackToSeed(ctx context.Context, cause error) error {
	s.logger.Warn("refresh failed, serving bundled dataset", "error", cause)
	s.applySeed(cause.Error())
	s.notifier.Failure(ctx, "Failed to load hospital data, showing offline records")
	if s.alerter != nil {
		s.alerter.DegradedMode(ctx, cause.Error())
	}
	return nil
}

func (s *Store) applySeed(errMsg string) {
	seed := hospital.SeedDataset()
	s.mu.Lock()
	s.patients = seed.Patients
	s.doctors = seed.Doctors
	s.appointments = seed.Appointments
	s.bills = seed.Bills
	s.inventory = seed.Inventory
	for _, r := range Resources {
		s.loading[r] = false
	}
	s.lastErr = errMsg
	s.degraded = errMsg != ""
	s.ready = true
	s.mu.Unlock()
}

func (s *Store) setLoading(r Resource, v bool) {
	s.mu.Lock()
	s.loading[r] = v
	s.mu.Unlock()
}

func (s *Store) replacePatients(in []hospital.Patient) {
	s.mu.Lock()
	s.patients = in
	s.loading[ResourcePatients] = false
	s.mu.Unlock()
}

func (s *Store) replaceDoctors(in []hospital.Doctor) {
	s.mu.Lock()
	s.doctors = in
	s.loading[ResourceDoctors] = false
	s.mu.Unlock()
}

func (s *Store) replaceAppointments(in []hospital.Appointment) {
	s.mu.Lock()
	s.appointments = in
	s.loading[ResourceAppointments] = false
	s.mu.Unlock()
}

func (s *Store) replaceBills(in []hospital.Bill) {
	s.mu.Lock()
	s.bills = in
	s.loading[ResourceBills] = false
	s.mu.Unlock()
}

func (s *Store) replaceInventory(in []hospital.InventoryItem) {
	s.mu.Lock()
	s.inventory = in
	s.loading[ResourceInventory] = false
	s.mu.Unlock()
}
