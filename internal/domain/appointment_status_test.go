package domain

import "testing"

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range AppointmentStatuses {
		if !ValidAppointmentStatus(s) {
			t.Errorf("ValidAppointmentStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []AppointmentStatus{"", "scheduled", "DONE", "PENDING"} {
		if ValidAppointmentStatus(s) {
			t.Errorf("ValidAppointmentStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransition_AllKnownPairsAllowed(t *testing.T) {
	// Staff correct mistakes by moving appointments back, so the table
	// currently permits every known pair.
	for _, from := range AppointmentStatuses {
		for _, to := range AppointmentStatuses {
			if !CanTransition(from, to) {
				t.Errorf("CanTransition(%q, %q) = false, want true", from, to)
			}
		}
	}
}

func TestCanTransition_UnknownStates(t *testing.T) {
	if CanTransition("PENDING", StatusScheduled) {
		t.Error("transition from unknown state should be rejected")
	}
	if CanTransition(StatusScheduled, "DONE") {
		t.Error("transition to unknown state should be rejected")
	}
}
