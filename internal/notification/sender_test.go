package notification

import (
	"strings"
	"testing"

	entnotification "github.com/dediamond1/mechanic/ent/notification"
)

func TestValidateParams(t *testing.T) {
	valid := Params{
		RecipientID: "user-1",
		Type:        TypeAppointmentScheduled,
		Title:       "Appointment scheduled",
		Message:     "Your appointment is booked",
	}
	if err := validateParams(valid); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantMsg string
	}{
		{"missing recipient", func(p *Params) { p.RecipientID = "" }, "recipient_id"},
		{"missing title", func(p *Params) { p.Title = "" }, "title"},
		{"missing message", func(p *Params) { p.Message = "" }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := validateParams(p)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToEntType(t *testing.T) {
	tests := []struct {
		in   string
		want entnotification.Type
	}{
		{TypeAppointmentScheduled, entnotification.TypeAPPOINTMENT_SCHEDULED},
		{TypeAppointmentStatusChange, entnotification.TypeAPPOINTMENT_STATUS_CHANGE},
		{TypeAppointmentReminder, entnotification.TypeAPPOINTMENT_REMINDER},
		{TypeIssueReported, entnotification.TypeISSUE_REPORTED},
	}
	for _, tt := range tests {
		got, err := toEntType(tt.in)
		if err != nil {
			t.Fatalf("toEntType(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("toEntType(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := toEntType("SOMETHING_ELSE"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
