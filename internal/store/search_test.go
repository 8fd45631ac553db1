package store

import (
	"context"
	"testing"

	"github.com/Alijeyrad/hospital_backend/internal/gateway"
	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

func searchCorpus() []hospital.Patient {
	return []hospital.Patient{
		{ID: "P001", Name: "John Smith", Email: "john.smith@email.com", Contact: "555-0101"},
		{ID: "P002", Name: "Emily Johnson", Email: "emily.j@email.com", Contact: "555-0102"},
		{ID: "P003", Name: "Michael Brown", Email: "m.brown@email.com", Contact: "555-0103"},
	}
}

func TestLocalSearch(t *testing.T) {
	corpus := searchCorpus()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"name substring, case folded", "joh", []string{"P001", "P002"}},
		{"id match", "p003", []string{"P003"}},
		{"email match", "EMILY.J", []string{"P002"}},
		{"contact digits as typed", "0101", []string{"P001"}},
		{"no hit", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localSearch{}.search(context.Background(), tt.query, corpus)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchPatients_EmptyQueryReturnsCollection(t *testing.T) {
	gw := &fakeGateway{data: hospital.Dataset{Patients: searchCorpus()}}
	s := newTestStore(gw, &recordingNotifier{})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, q := range []string{"", "   ", "\t"} {
		got, err := s.SearchPatients(context.Background(), q)
		if err != nil {
			t.Fatalf("SearchPatients(%q) failed: %v", q, err)
		}
		if len(got) != 3 {
			t.Errorf("SearchPatients(%q) = %d results, want the full collection", q, len(got))
		}
	}
}

func TestSearchPatients_ServerStrategyPreferred(t *testing.T) {
	gw := &fakeGateway{
		data:       hospital.Dataset{Patients: searchCorpus()},
		searchHits: []hospital.Patient{{ID: "P002", Name: "Emily Johnson"}},
	}
	s := newTestStore(gw, &recordingNotifier{})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := s.SearchPatients(context.Background(), "emily")
	if err != nil {
		t.Fatalf("SearchPatients failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "P002" {
		t.Errorf("results = %+v, want the server's answer", got)
	}
}

func TestSearchPatients_FallsBackToLocalScan(t *testing.T) {
	gw := &fakeGateway{
		data:      hospital.Dataset{Patients: searchCorpus()},
		searchErr: &gateway.RequestError{Message: "failed to search patients", Status: 502},
	}
	s := newTestStore(gw, &recordingNotifier{})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := s.SearchPatients(context.Background(), "joh")
	if err != nil {
		t.Fatalf("SearchPatients should fall back, got: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("results = %+v, want the local scan's two hits", got)
	}
}

func TestSearchPatients_OfflineUsesLocalScan(t *testing.T) {
	s := New(Params{Notifier: &recordingNotifier{}, Offline: true})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := s.SearchPatients(context.Background(), "john smith")
	if err != nil {
		t.Fatalf("SearchPatients failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "P001" {
		t.Errorf("results = %+v, want John Smith from the seed", got)
	}
}
