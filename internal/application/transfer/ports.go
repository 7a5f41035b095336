package transfer

import "time"

// FlatRecord is one customer view flattened to a single exportable row.
type FlatRecord struct {
	CustomerID  string
	Name        string
	Address     string
	Phone       string
	City        string
	InstallDate string
	Notes       string

	ServiceID    string
	NextService  string // empty when nothing is scheduled
	Status       string
	ServiceNotes string
	Handler      string

	Priority      string
	DaysUntil     string
	ContactStatus string
}

// ReportGenerator renders the flattened data as a PDF document.
type ReportGenerator interface {
	ScheduleReport(records []FlatRecord, generatedAt time.Time) ([]byte, error)
}

// XMLBuilder renders the flattened data as an XML document.
type XMLBuilder interface {
	Build(records []FlatRecord) ([]byte, error)
}
