// Package hospital holds the shared record shapes the dashboard works with
// and the bundled dataset used when the upstream API is unreachable.
package hospital

// AppointmentStatus is a closed enum. The store never rejects a transition;
// validity is the caller's (or the upstream's) responsibility.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type BillStatus string

const (
	BillPaid    BillStatus = "paid"
	BillPending BillStatus = "pending"
	BillOverdue BillStatus = "overdue"
)

type Patient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	BloodGroup     string `json:"bloodGroup"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	RegisteredDate string `json:"registeredDate"`
	LastVisit      string `json:"lastVisit,omitempty"`
}

type ScheduleSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Doctor is read-only in this version; no mutation operations exist.
type Doctor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Contact        string         `json:"contact"`
	Email          string         `json:"email"`
	Schedule       []ScheduleSlot `json:"schedule"`
	Patients       int            `json:"patients"`
	Appointments   int            `json:"appointments"`
}

// Appointment carries denormalized patient and doctor names fixed at
// creation time. They are never re-synced if the referenced record changes.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Purpose     string            `json:"purpose"`
}

type BillItem struct {
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
}

// Bill.Amount is supplied by the caller and never re-derived from Items.
type Bill struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Date        string     `json:"date"`
	Amount      float64    `json:"amount"`
	Status      BillStatus `json:"status"`
	Items       []BillItem `json:"items"`
}

// InventoryItem is read-only in this version.
type InventoryItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	SupplierInfo  string `json:"supplierInfo,omitempty"`
	LastRestocked string `json:"lastRestocked"`
}
