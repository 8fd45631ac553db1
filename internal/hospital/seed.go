package hospital

// Dataset is one full snapshot of all five collections.
type Dataset struct {
	Patients     []Patient
	Doctors      []Doctor
	Appointments []Appointment
	Bills        []Bill
	Inventory    []InventoryItem
}

// SeedDataset returns a fresh copy of the bundled dataset. The dashboard
// serves this corpus when the upstream API is down or disabled, so callers
// always get their own slices to mutate.
func SeedDataset() Dataset {
	return Dataset{
		Patients:     seedPatients(),
		Doctors:      seedDoctors(),
		Appointments: seedAppointments(),
		Bills:        seedBills(),
		Inventory:    seedInventory(),
	}
}

func seedPatients() []Patient {
	return []Patient{
		{
			ID:             "P001",
			Name:           "John Smith",
			Age:            45,
			Gender:         "Male",
			Contact:        "555-123-4567",
			Email:          "john.smith@example.com",
			Address:        "123 Main St, Anytown",
			BloodGroup:     "O+",
			MedicalHistory: "Hypertension, Diabetes Type 2",
			RegisteredDate: "2022-05-15",
			LastVisit:      "2023-08-10",
		},
		{
			ID:             "P002",
			Name:           "Sarah Johnson",
			Age:            32,
			Gender:         "Female",
			Contact:        "555-987-6543",
			Email:          "sarah.j@example.com",
			Address:        "456 Oak Ave, Somewhere",
			BloodGroup:     "A-",
			RegisteredDate: "2022-06-22",
			LastVisit:      "2023-09-05",
		},
		{
			ID:             "P003",
			Name:           "Michael Chen",
			Age:            28,
			Gender:         "Male",
			Contact:        "555-456-7890",
			Email:          "m.chen@example.com",
			Address:        "789 Pine Rd, Elsewhere",
			BloodGroup:     "B+",
			MedicalHistory: "Asthma",
			RegisteredDate: "2022-07-10",
			LastVisit:      "2023-08-25",
		},
		{
			ID:             "P004",
			Name:           "Emily Davis",
			Age:            54,
			Gender:         "Female",
			Contact:        "555-789-0123",
			Email:          "emily.d@example.com",
			Address:        "101 Cedar Ln, Nowhere",
			BloodGroup:     "AB+",
			MedicalHistory: "Arthritis",
			RegisteredDate: "2022-04-30",
			LastVisit:      "2023-09-12",
		},
		{
			ID:             "P005",
			Name:           "Robert Wilson",
			Age:            67,
			Gender:         "Male",
			Contact:        "555-234-5678",
			Email:          "r.wilson@example.com",
			Address:        "222 Maple Dr, Anywhere",
			BloodGroup:     "O-",
			MedicalHistory: "Heart Disease, High Cholesterol",
			RegisteredDate: "2022-03-15",
			LastVisit:      "2023-08-30",
		},
	}
}

func seedDoctors() []Doctor {
	return []Doctor{
		{
			ID:             "D001",
			Name:           "Dr. Elizabeth Taylor",
			Specialization: "Cardiology",
			Contact:        "555-111-2222",
			Email:          "dr.taylor@hospital.com",
			Schedule: []ScheduleSlot{
				{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Wednesday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Friday", StartTime: "09:00", EndTime: "13:00"},
			},
			Patients:     48,
			Appointments: 12,
		},
		{
			ID:             "D002",
			Name:           "Dr. James Rodriguez",
			Specialization: "Pediatrics",
			Contact:        "555-333-4444",
			Email:          "dr.rodriguez@hospital.com",
			Schedule: []ScheduleSlot{
				{Day: "Monday", StartTime: "08:00", EndTime: "16:00"},
				{Day: "Tuesday", StartTime: "08:00", EndTime: "16:00"},
				{Day: "Thursday", StartTime: "08:00", EndTime: "16:00"},
			},
			Patients:     65,
			Appointments: 18,
		},
		{
			ID:             "D003",
			Name:           "Dr. Susan Kim",
			Specialization: "Neurology",
			Contact:        "555-555-6666",
			Email:          "dr.kim@hospital.com",
			Schedule: []ScheduleSlot{
				{Day: "Tuesday", StartTime: "10:00", EndTime: "18:00"},
				{Day: "Wednesday", StartTime: "10:00", EndTime: "18:00"},
				{Day: "Friday", StartTime: "10:00", EndTime: "18:00"},
			},
			Patients:     32,
			Appointments: 9,
		},
		{
			ID:             "D004",
			Name:           "Dr. David Patel",
			Specialization: "Orthopedics",
			Contact:        "555-777-8888",
			Email:          "dr.patel@hospital.com",
			Schedule: []ScheduleSlot{
				{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Thursday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Friday", StartTime: "09:00", EndTime: "17:00"},
			},
			Patients:     54,
			Appointments: 15,
		},
	}
}

func seedAppointments() []Appointment {
	return []Appointment{
		{
			ID:          "A001",
			PatientID:   "P001",
			PatientName: "John Smith",
			DoctorID:    "D001",
			DoctorName:  "Dr. Elizabeth Taylor",
			Date:        "2023-09-22",
			Time:        "10:30",
			Status:      AppointmentScheduled,
			Purpose:     "Follow-up for hypertension medication",
		},
		{
			ID:          "A002",
			PatientID:   "P003",
			PatientName: "Michael Chen",
			DoctorID:    "D002",
			DoctorName:  "Dr. James Rodriguez",
			Date:        "2023-09-23",
			Time:        "09:15",
			Status:      AppointmentScheduled,
			Purpose:     "Annual check-up",
		},
		{
			ID:          "A003",
			PatientID:   "P002",
			PatientName: "Sarah Johnson",
			DoctorID:    "D003",
			DoctorName:  "Dr. Susan Kim",
			Date:        "2023-09-20",
			Time:        "14:00",
			Status:      AppointmentCompleted,
			Purpose:     "Headache and dizziness evaluation",
		},
		{
			ID:          "A004",
			PatientID:   "P004",
			PatientName: "Emily Davis",
			DoctorID:    "D004",
			DoctorName:  "Dr. David Patel",
			Date:        "2023-09-21",
			Time:        "11:45",
			Status:      AppointmentCompleted,
			Purpose:     "Knee pain consultation",
		},
		{
			ID:          "A005",
			PatientID:   "P005",
			PatientName: "Robert Wilson",
			DoctorID:    "D001",
			DoctorName:  "Dr. Elizabeth Taylor",
			Date:        "2023-09-24",
			Time:        "15:30",
			Status:      AppointmentScheduled,
			Purpose:     "Heart check-up",
		},
	}
}

func seedBills() []Bill {
	return []Bill{
		{
			ID:          "B001",
			PatientID:   "P001",
			PatientName: "John Smith",
			Date:        "2023-09-10",
			Amount:      350.00,
			Status:      BillPaid,
			Items: []BillItem{
				{Service: "Consultation", Cost: 150.00},
				{Service: "Blood Pressure Test", Cost: 50.00},
				{Service: "Blood Sugar Test", Cost: 75.00},
				{Service: "Medication", Cost: 75.00},
			},
		},
		{
			ID:          "B002",
			PatientID:   "P003",
			PatientName: "Michael Chen",
			Date:        "2023-08-25",
			Amount:      200.00,
			Status:      BillPaid,
			Items: []BillItem{
				{Service: "Consultation", Cost: 150.00},
				{Service: "Lung Function Test", Cost: 50.00},
			},
		},
		{
			ID:          "B003",
			PatientID:   "P002",
			PatientName: "Sarah Johnson",
			Date:        "2023-09-20",
			Amount:      475.00,
			Status:      BillPending,
			Items: []BillItem{
				{Service: "Consultation", Cost: 150.00},
				{Service: "MRI Scan", Cost: 325.00},
			},
		},
		{
			ID:          "B004",
			PatientID:   "P004",
			PatientName: "Emily Davis",
			Date:        "2023-09-21",
			Amount:      525.00,
			Status:      BillPending,
			Items: []BillItem{
				{Service: "Consultation", Cost: 150.00},
				{Service: "X-Ray", Cost: 200.00},
				{Service: "Physical Therapy", Cost: 175.00},
			},
		},
	}
}

func seedInventory() []InventoryItem {
	return []InventoryItem{
		{
			ID:            "I001",
			Name:          "Disposable Syringes",
			Category:      "Equipment",
			Quantity:      500,
			Unit:          "pcs",
			SupplierInfo:  "MedSupply Inc.",
			LastRestocked: "2023-09-01",
		},
		{
			ID:            "I002",
			Name:          "Paracetamol",
			Category:      "Medication",
			Quantity:      200,
			Unit:          "bottles",
			SupplierInfo:  "PharmaCorp Ltd.",
			LastRestocked: "2023-08-25",
		},
		{
			ID:            "I003",
			Name:          "Examination Gloves",
			Category:      "Equipment",
			Quantity:      1000,
			Unit:          "pcs",
			SupplierInfo:  "MedSupply Inc.",
			LastRestocked: "2023-09-05",
		},
		{
			ID:            "I004",
			Name:          "Antibiotics",
			Category:      "Medication",
			Quantity:      150,
			Unit:          "bottles",
			SupplierInfo:  "PharmaCorp Ltd.",
			LastRestocked: "2023-08-30",
		},
	}
}
