package domain

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "SCHEDULED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
)

// AppointmentStatuses lists all valid states.
var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// statusTransitions is the explicit transition table. Every cell is currently
// permitted (staff correct mistakes by moving appointments back), so adding a
// guard later is a data change here, not a code change.
var statusTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	StatusScheduled: {
		StatusScheduled:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusCancelled:  true,
	},
	StatusInProgress: {
		StatusScheduled:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusCancelled:  true,
	},
	StatusCompleted: {
		StatusScheduled:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusCancelled:  true,
	},
	StatusCancelled: {
		StatusScheduled:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusCancelled:  true,
	},
}

// ValidAppointmentStatus reports whether s is one of the four known states.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition consults the transition table for from → to. Unknown states
// are never allowed.
func CanTransition(from, to AppointmentStatus) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}
