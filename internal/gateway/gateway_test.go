package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alijeyrad/hospital_backend/config"
	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

func newTestClient(baseURL string) *Client {
	return New(config.UpstreamConfig{Enabled: true, BaseURL: baseURL})
}

func TestListPatients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patients" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]hospital.Patient{
			{ID: "P001", Name: "John Smith"},
			{ID: "P002", Name: "Emily Johnson"},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).ListPatients(context.Background())
	if err != nil {
		t.Fatalf("ListPatients failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "P001" {
		t.Errorf("patients = %+v", got)
	}
}

func TestListPatients_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListPatients(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Message != "failed to fetch patients" {
		t.Errorf("message = %q", reqErr.Message)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", reqErr.Status)
	}
}

func TestListPatients_ConnectionError(t *testing.T) {
	// Closed server: transport-level failure, no status code.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).ListPatients(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable upstream")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Status != 0 {
		t.Errorf("status = %d, want 0 for transport errors", reqErr.Status)
	}
	if reqErr.Unwrap() == nil {
		t.Error("transport error should be wrapped")
	}
}

func TestCreatePatient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patients" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req hospital.NewPatient
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(hospital.Patient{ID: "P010", Name: req.Name, RegisteredDate: "2026-02-01"})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).CreatePatient(context.Background(), hospital.NewPatient{Name: "New Person"})
	if err != nil {
		t.Fatalf("CreatePatient failed: %v", err)
	}
	if got.ID != "P010" || got.Name != "New Person" {
		t.Errorf("patient = %+v", got)
	}
}

func TestSearchPatients_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patients/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "joh" {
			t.Errorf("q = %q, want joh", q)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]hospital.Patient{{ID: "P001"}})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).SearchPatients(context.Background(), "joh")
	if err != nil {
		t.Fatalf("SearchPatients failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("results = %+v", got)
	}
}

func TestCancelAppointment_IgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/appointments/A003/cancel" || r.Method != http.MethodPut {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		// Deliberately not JSON; the client must not try to decode it.
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).CancelAppointment(context.Background(), "A003"); err != nil {
		t.Fatalf("CancelAppointment failed: %v", err)
	}
}

func TestUpdateBillStatus_SendsStatusBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bills/B002/status" || r.Method != http.MethodPut {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["status"] != "paid" {
			t.Errorf("status = %q, want paid", body["status"])
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).UpdateBillStatus(context.Background(), "B002", hospital.BillPaid); err != nil {
		t.Fatalf("UpdateBillStatus failed: %v", err)
	}
}

func TestRequestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  RequestError
		want string
	}{
		{"status only", RequestError{Message: "failed to fetch bills", Status: 503}, "failed to fetch bills (status 503)"},
		{"wrapped error", RequestError{Message: "failed to fetch bills", Err: errors.New("dial tcp: refused")}, "failed to fetch bills: dial tcp: refused"},
		{"bare", RequestError{Message: "failed to fetch bills"}, "failed to fetch bills"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
