package entity

// ServiceSummary is the per-service slice of a CustomerView.
type ServiceSummary struct {
	ServiceID string
	Date      string
	Status    string
	Notes     string
	Handler   string
}

// CustomerView is a customer joined with its service history, with one
// representative service hoisted to the top level. It is derived, never persisted.
//
// NextService is non-nil only when a non-completed representative exists; it then
// equals the representative's date.
type CustomerView struct {
	Customer

	ServiceID    string
	Status       string
	ServiceNotes string
	Handler      string
	NextService  *string
	Services     []ServiceSummary
}
