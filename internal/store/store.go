// Package store owns the dashboard's in-memory state: five collections,
// a loading flag per collection and one last-error slot. Collections are
// only ever replaced wholesale, never mutated in place, so snapshots handed
// out remain stable while a later mutation swaps the slice underneath.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alijeyrad/hospital_backend/internal/hospital"
	"github.com/Alijeyrad/hospital_backend/internal/notify"
)

// Gateway is the upstream hospital API as the store needs it. Satisfied by
// *gateway.Client; tests substitute a stub.
type Gateway interface {
	ListPatients(ctx context.Context) ([]hospital.Patient, error)
	CreatePatient(ctx context.Context, req hospital.NewPatient) (*hospital.Patient, error)
	UpdatePatient(ctx context.Context, p hospital.Patient) (*hospital.Patient, error)
	SearchPatients(ctx context.Context, query string) ([]hospital.Patient, error)
	ListDoctors(ctx context.Context) ([]hospital.Doctor, error)
	ListAppointments(ctx context.Context) ([]hospital.Appointment, error)
	CreateAppointment(ctx context.Context, req hospital.NewAppointment) (*hospital.Appointment, error)
	UpdateAppointment(ctx context.Context, a hospital.Appointment) (*hospital.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
	ListBills(ctx context.Context) ([]hospital.Bill, error)
	CreateBill(ctx context.Context, req hospital.NewBill) (*hospital.Bill, error)
	UpdateBillStatus(ctx context.Context, id string, status hospital.BillStatus) error
	ListInventory(ctx context.Context) ([]hospital.InventoryItem, error)
}

// Alerter is told when the store enters degraded mode (serving the bundled
// dataset instead of live data). Optional.
type Alerter interface {
	DegradedMode(ctx context.Context, reason string)
}

// Resource names one of the five collections.
type Resource string

const (
	ResourcePatients     Resource = "patients"
	ResourceDoctors      Resource = "doctors"
	ResourceAppointments Resource = "appointments"
	ResourceBills        Resource = "bills"
	ResourceInventory    Resource = "inventory"
)

// Resources in the order they are refreshed.
var Resources = []Resource{
	ResourcePatients,
	ResourceDoctors,
	ResourceAppointments,
	ResourceBills,
	ResourceInventory,
}

type Params struct {
	Gateway  Gateway // required unless Offline
	Notifier notify.Notifier
	Offline  bool
	Alerter  Alerter          // optional
	Logger   *slog.Logger     // optional
	Now      func() time.Time // optional, for tests
}

// Store is created once at application start and lives for the process.
// Gateway calls run outside the lock, so two overlapping mutations on the
// same record resolve last-resolved-wins.
type Store struct {
	mu           sync.RWMutex
	patients     []hospital.Patient
	doctors      []hospital.Doctor
	appointments []hospital.Appointment
	bills        []hospital.Bill
	inventory    []hospital.InventoryItem
	loading      map[Resource]bool
	lastErr      string
	degraded     bool
	ready        bool

	gw       Gateway
	notifier notify.Notifier
	offline  bool
	alerter  Alerter
	logger   *slog.Logger
	now      func() time.Time
}

func New(p Params) *Store {
	if p.Notifier == nil {
		p.Notifier = notify.NewLog(p.Logger)
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Store{
		loading:  make(map[Resource]bool),
		gw:       p.Gateway,
		notifier: p.Notifier,
		offline:  p.Offline,
		alerter:  p.Alerter,
		logger:   p.Logger,
		now:      p.Now,
	}
}

// ---------------------------------------------------------------------------
// Snapshot accessors
// ---------------------------------------------------------------------------

// Returned slices are the store's current snapshot. They are never mutated
// in place, but callers must treat them as read-only.

func (s *Store) Patients() []hospital.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients
}

func (s *Store) Doctors() []hospital.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctors
}

func (s *Store) Appointments() []hospital.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments
}

func (s *Store) Bills() []hospital.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bills
}

func (s *Store) Inventory() []hospital.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory
}

func (s *Store) Loading(r Resource) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[r]
}

// LastError returns the recorded refresh failure message, empty when the
// last refresh succeeded.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Degraded reports whether the store is serving the bundled dataset.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Ready reports whether the initial refresh has finished, successfully or
// by falling back to the bundled dataset.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// AddPatient creates a patient upstream and appends the returned record
// (with its assigned id) to the collection. In offline mode the id and
// registration date are assigned locally.
func (s *Store) AddPatient(ctx context.Context, req hospital.NewPatient) (*hospital.Patient, error) {
	var p *hospital.Patient
	if s.offline {
		p = s.localNewPatient(req)
	} else {
		created, err := s.gw.CreatePatient(ctx, req)
		if err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to add patient"))
			return nil, err
		}
		p = created
		s.mu.Lock()
		s.patients = append(copyOf(s.patients), *p)
		s.mu.Unlock()
	}
	s.notifier.Success(ctx, "Patient added successfully")
	return p, nil
}

// UpdatePatient replaces the element whose id matches. An unmatched id
// leaves the collection unchanged; that is a silent no-op, not an error.
func (s *Store) UpdatePatient(ctx context.Context, p hospital.Patient) (*hospital.Patient, error) {
	updated := &p
	if !s.offline {
		var err error
		updated, err = s.gw.UpdatePatient(ctx, p)
		if err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to update patient"))
			return nil, err
		}
	}
	s.mu.Lock()
	next := copyOf(s.patients)
	for i := range next {
		if next[i].ID == updated.ID {
			next[i] = *updated
		}
	}
	s.patients = next
	s.mu.Unlock()
	s.notifier.Success(ctx, "Patient updated successfully")
	return updated, nil
}

func (s *Store) AddAppointment(ctx context.Context, req hospital.NewAppointment) (*hospital.Appointment, error) {
	var a *hospital.Appointment
	if s.offline {
		a = s.localNewAppointment(req)
	} else {
		created, err := s.gw.CreateAppointment(ctx, req)
		if err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to schedule appointment"))
			return nil, err
		}
		a = created
		s.mu.Lock()
		s.appointments = append(copyOf(s.appointments), *a)
		s.mu.Unlock()
	}
	s.notifier.Success(ctx, "Appointment scheduled successfully")
	return a, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, a hospital.Appointment) (*hospital.Appointment, error) {
	updated := &a
	if !s.offline {
		var err error
		updated, err = s.gw.UpdateAppointment(ctx, a)
		if err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to update appointment"))
			return nil, err
		}
	}
	s.mu.Lock()
	next := copyOf(s.appointments)
	for i := range next {
		if next[i].ID == updated.ID {
			next[i] = *updated
		}
	}
	s.appointments = next
	s.mu.Unlock()
	s.notifier.Success(ctx, "Appointment updated successfully")
	return updated, nil
}

// CancelAppointment confirms the cancellation upstream, then flips only the
// local status field. The upstream response body is not consulted.
func (s *Store) CancelAppointment(ctx context.Context, id string) error {
	if !s.offline {
		if err := s.gw.CancelAppointment(ctx, id); err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to cancel appointment"))
			return err
		}
	}
	s.mu.Lock()
	next := copyOf(s.appointments)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = hospital.AppointmentCancelled
		}
	}
	s.appointments = next
	s.mu.Unlock()
	s.notifier.Success(ctx, "Appointment cancelled successfully")
	return nil
}

// AddBill stores the bill exactly as supplied; Amount is never re-derived
// from the item costs.
func (s *Store) AddBill(ctx context.Context, req hospital.NewBill) (*hospital.Bill, error) {
	var b *hospital.Bill
	if s.offline {
		b = s.localNewBill(req)
	} else {
		created, err := s.gw.CreateBill(ctx, req)
		if err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to create bill"))
			return nil, err
		}
		b = created
		s.mu.Lock()
		s.bills = append(copyOf(s.bills), *b)
		s.mu.Unlock()
	}
	s.notifier.Success(ctx, "Bill created successfully")
	return b, nil
}

func (s *Store) UpdateBillStatus(ctx context.Context, id string, status hospital.BillStatus) error {
	if !s.offline {
		if err := s.gw.UpdateBillStatus(ctx, id, status); err != nil {
			s.notifier.Failure(ctx, failureMessage(err, "Failed to update bill status"))
			return err
		}
	}
	s.mu.Lock()
	next := copyOf(s.bills)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
		}
	}
	s.bills = next
	s.mu.Unlock()
	s.notifier.Success(ctx, fmt.Sprintf("Bill marked as %s", status))
	return nil
}

// ---------------------------------------------------------------------------
// Offline-mode record creation
// ---------------------------------------------------------------------------

// Offline ids are a resource prefix plus the zero-padded collection
// length + 1, the same scheme the seed dataset uses.

func (s *Store) localNewPatient(req hospital.NewPatient) *hospital.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := hospital.Patient{
		ID:             fmt.Sprintf("P%03d", len(s.patients)+1),
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Contact:        req.Contact,
		Email:          req.Email,
		Address:        req.Address,
		BloodGroup:     req.BloodGroup,
		MedicalHistory: req.MedicalHistory,
		RegisteredDate: s.now().Format("2006-01-02"),
		LastVisit:      req.LastVisit,
	}
	s.patients = append(copyOf(s.patients), p)
	return &p
}

func (s *Store) localNewAppointment(req hospital.NewAppointment) *hospital.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := hospital.Appointment{
		ID:          fmt.Sprintf("A%03d", len(s.appointments)+1),
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		Purpose:     req.Purpose,
	}
	s.appointments = append(copyOf(s.appointments), a)
	return &a
}

func (s *Store) localNewBill(req hospital.NewBill) *hospital.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := hospital.Bill{
		ID:          fmt.Sprintf("B%03d", len(s.bills)+1),
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Amount:      req.Amount,
		Status:      req.Status,
		Items:       req.Items,
	}
	s.bills = append(copyOf(s.bills), b)
	return &b
}

// failureMessage prefers the gateway's message; the generic fallback covers
// errors with nothing useful to show.
func failureMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
