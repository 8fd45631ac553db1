package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alijeyrad/hospital_backend/internal/gateway"
	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

// fakeGateway serves a fixed dataset and can be told to fail at a given
// collection or on mutations.
type fakeGateway struct {
	data   hospital.Dataset
	failAt Resource // list call for this resource errors; "" never fails

	mutationErr error
	searchHits  []hospital.Patient
	searchErr   error

	canceled       []string
	statusUpdates  []string
	createdPatient *hospital.Patient // echoed by CreatePatient when set
}

func (f *fakeGateway) listErr(r Resource) error {
	if f.failAt == r {
		return &gateway.RequestError{Message: "failed to fetch " + string(r), Status: 503}
	}
	return nil
}

func (f *fakeGateway) ListPatients(ctx context.Context) ([]hospital.Patient, error) {
	if err := f.listErr(ResourcePatients); err != nil {
		return nil, err
	}
	return f.data.Patients, nil
}

func (f *fakeGateway) ListDoctors(ctx context.Context) ([]hospital.Doctor, error) {
	if err := f.listErr(ResourceDoctors); err != nil {
		return nil, err
	}
	return f.data.Doctors, nil
}

func (f *fakeGateway) ListAppointments(ctx context.Context) ([]hospital.Appointment, error) {
	if err := f.listErr(ResourceAppointments); err != nil {
		return nil, err
	}
	return f.data.Appointments, nil
}

func (f *fakeGateway) ListBills(ctx context.Context) ([]hospital.Bill, error) {
	if err := f.listErr(ResourceBills); err != nil {
		return nil, err
	}
	return f.data.Bills, nil
}

func (f *fakeGateway) ListInventory(ctx context.Context) ([]hospital.InventoryItem, error) {
	if err := f.listErr(ResourceInventory); err != nil {
		return nil, err
	}
	return f.data.Inventory, nil
}

func (f *fakeGateway) CreatePatient(ctx context.Context, req hospital.NewPatient) (*hospital.Patient, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	if f.createdPatient != nil {
		return f.createdPatient, nil
	}
	return &hospital.Patient{ID: "SRV-P1", Name: req.Name, RegisteredDate: "2026-01-15"}, nil
}

func (f *fakeGateway) UpdatePatient(ctx context.Context, p hospital.Patient) (*hospital.Patient, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &p, nil
}

func (f *fakeGateway) SearchPatients(ctx context.Context, query string) ([]hospital.Patient, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchHits, nil
}

func (f *fakeGateway) CreateAppointment(ctx context.Context, req hospital.NewAppointment) (*hospital.Appointment, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &hospital.Appointment{
		ID: "SRV-A1", PatientID: req.PatientID, PatientName: req.PatientName,
		DoctorID: req.DoctorID, DoctorName: req.DoctorName,
		Date: req.Date, Time: req.Time, Status: req.Status, Purpose: req.Purpose,
	}, nil
}

func (f *fakeGateway) UpdateAppointment(ctx context.Context, a hospital.Appointment) (*hospital.Appointment, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &a, nil
}

func (f *fakeGateway) CancelAppointment(ctx context.Context, id string) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.canceled = append(f.canceled, id)
	return nil
}

func (f *fakeGateway) CreateBill(ctx context.Context, req hospital.NewBill) (*hospital.Bill, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	b := hospital.Bill{
		ID: "SRV-B1", PatientID: req.PatientID, PatientName: req.PatientName,
		Date: req.Date, Amount: req.Amount, Status: req.Status, Items: req.Items,
	}
	return &b, nil
}

func (f *fakeGateway) UpdateBillStatus(ctx context.Context, id string, status hospital.BillStatus) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.statusUpdates = append(f.statusUpdates, id+":"+string(status))
	return nil
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) {
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Failure(_ context.Context, msg string) {
	n.failures = append(n.failures, msg)
}

type recordingAlerter struct {
	reasons []string
}

func (a *recordingAlerter) DegradedMode(_ context.Context, reason string) {
	a.reasons = append(a.reasons, reason)
}

func liveDataset() hospital.Dataset {
	return hospital.Dataset{
		Patients: []hospital.Patient{
			{ID: "X001", Name: "Live Patient", Email: "live@example.com", Contact: "555-0000"},
		},
		Doctors:      []hospital.Doctor{{ID: "Y001", Name: "Dr. Live"}},
		Appointments: []hospital.Appointment{{ID: "Z001", PatientID: "X001", Status: hospital.AppointmentScheduled}},
		Bills:        []hospital.Bill{{ID: "W001", PatientID: "X001", Amount: 100, Status: hospital.BillPending}},
		Inventory:    []hospital.InventoryItem{{ID: "V001", Name: "Gauze", Quantity: 3}},
	}
}

func newTestStore(gw Gateway, n *recordingNotifier) *Store {
	return New(Params{Gateway: gw, Notifier: n})
}

func TestRefresh_AllCollectionsFromUpstream(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if got := s.Patients(); len(got) != 1 || got[0].ID != "X001" {
		t.Errorf("Patients = %+v, want the upstream record", got)
	}
	if got := s.Doctors(); len(got) != 1 || got[0].ID != "Y001" {
		t.Errorf("Doctors = %+v, want the upstream record", got)
	}
	if s.Degraded() {
		t.Error("store should not be degraded after a clean refresh")
	}
	if s.LastError() != "" {
		t.Errorf("LastError = %q, want empty", s.LastError())
	}
	if !s.Ready() {
		t.Error("store should be ready after refresh")
	}
	if len(n.failures) != 0 {
		t.Errorf("unexpected failure toasts: %v", n.failures)
	}
}

func TestRefresh_FailureMidChainFallsBackToSeed(t *testing.T) {
	// Patients and doctors fetch fine; bills fail. The whole state must be
	// the bundled dataset, including collections already fetched.
	gw := &fakeGateway{data: liveDataset(), failAt: ResourceBills}
	n := &recordingNotifier{}
	a := &recordingAlerter{}
	s := New(Params{Gateway: gw, Notifier: n, Alerter: a})

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh should absorb the failure, got: %v", err)
	}

	seed := hospital.SeedDataset()
	if got := s.Patients(); len(got) != len(seed.Patients) || got[0].ID != seed.Patients[0].ID {
		t.Errorf("Patients = %d records starting %q, want seed dataset", len(got), got[0].ID)
	}
	if got := s.Doctors(); len(got) != len(seed.Doctors) {
		t.Errorf("Doctors = %d records, want %d from seed", len(got), len(seed.Doctors))
	}
	if !s.Degraded() {
		t.Error("store should report degraded")
	}
	if s.LastError() == "" {
		t.Error("LastError should record the refresh failure")
	}
	for _, r := range Resources {
		if s.Loading(r) {
			t.Errorf("Loading(%s) still true after fallback", r)
		}
	}
	if len(n.failures) != 1 || n.failures[0] != "Failed to load hospital data, showing offline records" {
		t.Errorf("failure toasts = %v", n.failures)
	}
	if len(a.reasons) != 1 {
		t.Errorf("alerter calls = %v, want one", a.reasons)
	}
}

func TestRefresh_FirstFetchFailure(t *testing.T) {
	gw := &fakeGateway{data: liveDataset(), failAt: ResourcePatients}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh should absorb the failure, got: %v", err)
	}
	seed := hospital.SeedDataset()
	if got := s.Inventory(); len(got) != len(seed.Inventory) {
		t.Errorf("Inventory = %d records, want %d from seed", len(got), len(seed.Inventory))
	}
}

func TestAddPatient_AppendsUpstreamRecord(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	p, err := s.AddPatient(context.Background(), hospital.NewPatient{Name: "New Person"})
	if err != nil {
		t.Fatalf("AddPatient failed: %v", err)
	}
	if p.ID != "SRV-P1" {
		t.Errorf("patient id = %q, want the upstream-assigned id", p.ID)
	}

	got := s.Patients()
	if len(got) != 2 || got[1].ID != "SRV-P1" {
		t.Errorf("Patients = %+v, want original plus appended record", got)
	}
	if len(n.successes) != 1 || n.successes[0] != "Patient added successfully" {
		t.Errorf("success toasts = %v", n.successes)
	}
}

func TestAddPatient_GatewayFailureLeavesStateUntouched(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	gw.mutationErr = &gateway.RequestError{Message: "failed to add patient", Status: 500}
	_, err := s.AddPatient(context.Background(), hospital.NewPatient{Name: "Nope"})
	if err == nil {
		t.Fatal("expected error from failed mutation")
	}
	var reqErr *gateway.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *gateway.RequestError", err)
	}
	if len(s.Patients()) != 1 {
		t.Errorf("collection changed after failed mutation: %+v", s.Patients())
	}
	if len(n.failures) != 1 {
		t.Errorf("failure toasts = %v, want one", n.failures)
	}
	if len(n.successes) != 0 {
		t.Errorf("unexpected success toasts: %v", n.successes)
	}
}

func TestUpdatePatient_UnknownIDIsNoOp(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	before := s.Patients()
	_, err := s.UpdatePatient(context.Background(), hospital.Patient{ID: "NOPE", Name: "Ghost"})
	if err != nil {
		t.Fatalf("UpdatePatient failed: %v", err)
	}

	after := s.Patients()
	if len(after) != len(before) || after[0].Name != before[0].Name {
		t.Errorf("collection changed for unknown id: %+v", after)
	}
	// Toast still fires; unknown ids are not distinguished.
	if len(n.successes) != 1 {
		t.Errorf("success toasts = %v, want one", n.successes)
	}
}

func TestCancelAppointment_FlipsOnlyStatus(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.CancelAppointment(context.Background(), "Z001"); err != nil {
		t.Fatalf("CancelAppointment failed: %v", err)
	}

	got := s.Appointments()
	if got[0].Status != hospital.AppointmentCancelled {
		t.Errorf("status = %q, want cancelled", got[0].Status)
	}
	if got[0].PatientID != "X001" {
		t.Errorf("other fields changed: %+v", got[0])
	}
	if len(gw.canceled) != 1 || gw.canceled[0] != "Z001" {
		t.Errorf("gateway cancellations = %v", gw.canceled)
	}
}

func TestUpdateBillStatus_PreservesAmount(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateBillStatus(context.Background(), "W001", hospital.BillPaid); err != nil {
		t.Fatalf("UpdateBillStatus failed: %v", err)
	}

	got := s.Bills()
	if got[0].Status != hospital.BillPaid {
		t.Errorf("status = %q, want paid", got[0].Status)
	}
	if got[0].Amount != 100 {
		t.Errorf("amount = %v, want untouched 100", got[0].Amount)
	}
	if len(n.successes) != 1 || n.successes[0] != "Bill marked as paid" {
		t.Errorf("success toasts = %v", n.successes)
	}
}

func TestAddBill_AmountNotDerivedFromItems(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	b, err := s.AddBill(context.Background(), hospital.NewBill{
		PatientID: "X001",
		Amount:    999,
		Status:    hospital.BillPending,
		Items:     []hospital.BillItem{{Service: "Consultation", Cost: 50}},
	})
	if err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}
	if b.Amount != 999 {
		t.Errorf("amount = %v, want the supplied 999 regardless of item costs", b.Amount)
	}
}

func TestOfflineMode_LocalIDsAndRegisteredDate(t *testing.T) {
	n := &recordingNotifier{}
	fixed := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	s := New(Params{Notifier: n, Offline: true, Now: func() time.Time { return fixed }})

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("offline refresh failed: %v", err)
	}
	if s.Degraded() {
		t.Error("offline mode is not degraded mode")
	}

	seed := hospital.SeedDataset()
	p, err := s.AddPatient(context.Background(), hospital.NewPatient{Name: "Walk In"})
	if err != nil {
		t.Fatalf("AddPatient failed: %v", err)
	}
	wantID := "P006"
	if len(seed.Patients) != 5 {
		t.Fatalf("seed patients = %d, fixture drifted", len(seed.Patients))
	}
	if p.ID != wantID {
		t.Errorf("patient id = %q, want %q", p.ID, wantID)
	}
	if p.RegisteredDate != "2026-03-09" {
		t.Errorf("registeredDate = %q, want the injected clock's date", p.RegisteredDate)
	}

	a, err := s.AddAppointment(context.Background(), hospital.NewAppointment{PatientID: p.ID, DoctorID: "D001", Status: hospital.AppointmentScheduled})
	if err != nil {
		t.Fatalf("AddAppointment failed: %v", err)
	}
	if a.ID != "A006" {
		t.Errorf("appointment id = %q, want A006", a.ID)
	}

	b, err := s.AddBill(context.Background(), hospital.NewBill{PatientID: p.ID, Amount: 10, Status: hospital.BillPending})
	if err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}
	if b.ID != "B005" {
		t.Errorf("bill id = %q, want B005", b.ID)
	}
}

func TestSnapshotsStableAcrossMutations(t *testing.T) {
	gw := &fakeGateway{data: liveDataset()}
	n := &recordingNotifier{}
	s := newTestStore(gw, n)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	snapshot := s.Appointments()
	if err := s.CancelAppointment(context.Background(), "Z001"); err != nil {
		t.Fatal(err)
	}
	if snapshot[0].Status != hospital.AppointmentScheduled {
		t.Error("earlier snapshot mutated in place")
	}
}
