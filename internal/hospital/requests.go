package hospital

// Creation payloads. The upstream assigns ids (and registeredDate for
// patients); in offline mode the store assigns them instead.

type NewPatient struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	BloodGroup     string `json:"bloodGroup"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	LastVisit      string `json:"lastVisit,omitempty"`
}

type NewAppointment struct {
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Purpose     string            `json:"purpose"`
}

type NewBill struct {
	PatientID   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Date        string     `json:"date"`
	Amount      float64    `json:"amount"`
	Status      BillStatus `json:"status"`
	Items       []BillItem `json:"items"`
}
