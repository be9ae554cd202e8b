package service

import "testing"

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		edge string
		want DeletePolicy
	}{
		{"customer.vehicles", PolicyRestrict},
		{"vehicle.appointments", PolicyCascade},
		{"vehicle.issues", PolicyCascade},
		{"vehicle.service_records", PolicyCascade},
		{"employee.appointments", PolicyRestrict},
		{"appointment.service_records", PolicyOrphan},
	}
	for _, tt := range tests {
		if got := PolicyFor(tt.edge); got != tt.want {
			t.Errorf("PolicyFor(%q) = %q, want %q", tt.edge, got, tt.want)
		}
	}
}

func TestPolicyFor_UnknownEdgeDefaultsToRestrict(t *testing.T) {
	if got := PolicyFor("customer.appointments"); got != PolicyRestrict {
		t.Errorf("PolicyFor(unknown) = %q, want %q", got, PolicyRestrict)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"per page capped", 2, 500, 2, 100},
		{"passthrough", 3, 50, 3, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := normalizePage(tt.page, tt.perPage)
			if page != tt.wantPage || perPage != tt.wantPerPage {
				t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.perPage, page, perPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
