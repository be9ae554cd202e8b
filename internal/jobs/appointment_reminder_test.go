package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestAppointmentReminderArgsKind(t *testing.T) {
	t.Parallel()

	if got := (AppointmentReminderArgs{}).Kind(); got != "appointment_reminder" {
		t.Fatalf("Kind() = %q, want %q", got, "appointment_reminder")
	}
}

func TestAppointmentReminderArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (AppointmentReminderArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewAppointmentReminderWorkerWindow(t *testing.T) {
	t.Parallel()

	t.Run("defaults to one day when non-positive", func(t *testing.T) {
		w := NewAppointmentReminderWorker(nil, nil, 0)
		if w.window != DefaultReminderWindow {
			t.Fatalf("window = %s, want %s", w.window, DefaultReminderWindow)
		}
	})

	t.Run("uses explicit window when provided", func(t *testing.T) {
		want := 6 * time.Hour
		w := NewAppointmentReminderWorker(nil, nil, want)
		if w.window != want {
			t.Fatalf("window = %s, want %s", w.window, want)
		}
	})
}

func TestAppointmentReminderWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *AppointmentReminderWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil dependencies", func(t *testing.T) {
		w := &AppointmentReminderWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}
