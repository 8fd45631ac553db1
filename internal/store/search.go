package store

import (
	"context"
	"strings"

	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

// Patient search has two implementations that must stay behaviorally
// consistent: the upstream's /patients/search endpoint and a local
// substring scan used when that call fails (or in offline mode). Both are
// substring matchers, not tokenizers.

type searchStrategy interface {
	search(ctx context.Context, query string, current []hospital.Patient) ([]hospital.Patient, error)
}

type serverSearch struct {
	gw Gateway
}

func (s serverSearch) search(ctx context.Context, query string, _ []hospital.Patient) ([]hospital.Patient, error) {
	return s.gw.SearchPatients(ctx, query)
}

type localSearch struct{}

// search matches name, id and email case-insensitively; contact is matched
// on the raw query, so digits and dashes compare as typed.
func (localSearch) search(_ context.Context, query string, current []hospital.Patient) ([]hospital.Patient, error) {
	lq := strings.ToLower(query)
	var out []hospital.Patient
	for _, p := range current {
		if strings.Contains(strings.ToLower(p.Name), lq) ||
			strings.Contains(strings.ToLower(p.ID), lq) ||
			strings.Contains(p.Contact, query) ||
			strings.Contains(strings.ToLower(p.Email), lq) {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchPatients returns the current collection for an empty or whitespace
// query. Otherwise the server strategy runs first and the local strategy
// covers its failure.
func (s *Store) SearchPatients(ctx context.Context, query string) ([]hospital.Patient, error) {
	if strings.TrimSpace(query) == "" {
		return s.Patients(), nil
	}

	if !s.offline {
		res, err := serverSearch{gw: s.gw}.search(ctx, query, nil)
		if err == nil {
			return res, nil
		}
		s.logger.Warn("server-side patient search failed, falling back to local scan", "error", err)
	}

	return localSearch{}.search(ctx, query, s.Patients())
}
