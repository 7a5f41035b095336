package entity

// Service record statuses. Status is a plain string because contact actions may
// write arbitrary status values through the passthrough branch.
const (
	StatusUpcoming  = "UPCOMING"
	StatusCompleted = "COMPLETED"
	StatusOverdue   = "OVERDUE"
)

// InstallationNote marks the COMPLETED record created at customer registration.
// Records carrying it are ignored when looking up the most recent real service.
const InstallationNote = "initial installation"

// RoutineNote is written on the follow-up record inserted after a successful contact.
const RoutineNote = "next routine service"

// ServiceRecord is one scheduled or historical service visit.
type ServiceRecord struct {
	ID         string // SVC-YYYYMMDDNNNNN, date part follows Date
	CustomerID string
	Date       string // YYYY-MM-DD
	Status     string
	Notes      string
	Handler    string // technician name
}
