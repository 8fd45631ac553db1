package hospital

import "testing"

func TestSeedDataset_Counts(t *testing.T) {
	d := SeedDataset()

	if len(d.Patients) != 5 {
		t.Errorf("patients = %d, want 5", len(d.Patients))
	}
	if len(d.Doctors) != 4 {
		t.Errorf("doctors = %d, want 4", len(d.Doctors))
	}
	if len(d.Appointments) != 5 {
		t.Errorf("appointments = %d, want 5", len(d.Appointments))
	}
	if len(d.Bills) != 4 {
		t.Errorf("bills = %d, want 4", len(d.Bills))
	}
	if len(d.Inventory) != 4 {
		t.Errorf("inventory = %d, want 4", len(d.Inventory))
	}
}

func TestSeedDataset_ReturnsFreshCopies(t *testing.T) {
	a := SeedDataset()
	a.Patients[0].Name = "Mutated"
	a.Bills[0].Status = BillOverdue

	b := SeedDataset()
	if b.Patients[0].Name == "Mutated" {
		t.Error("second call sees first call's mutation")
	}
	if b.Bills[0].Status == BillOverdue && a.Bills[0].ID == b.Bills[0].ID {
		// B001 is paid in the fixture.
		t.Error("bill status leaked between copies")
	}
}

func TestSeedDataset_KnownRecords(t *testing.T) {
	d := SeedDataset()

	if d.Patients[0].ID != "P001" || d.Patients[0].Name != "John Smith" {
		t.Errorf("first patient = %+v", d.Patients[0])
	}
	if d.Doctors[0].ID != "D001" {
		t.Errorf("first doctor = %+v", d.Doctors[0])
	}
	if d.Appointments[0].Status != AppointmentScheduled {
		t.Errorf("first appointment status = %q", d.Appointments[0].Status)
	}
}
