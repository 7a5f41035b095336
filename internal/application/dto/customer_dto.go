package dto

// CreateCustomerRequest is the add-customer input. Installation date doubles as
// the date of the COMPLETED installation service record.
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	Phone       string `json:"phone" validate:"required"`
	City        string `json:"city" validate:"omitempty,max=100"`
	InstallDate string `json:"install_date" validate:"required"` // YYYY-MM-DD
	Notes       string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateCustomerRequest is a field-level patch; nil fields stay untouched.
type UpdateCustomerRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	City        *string `json:"city"`
	InstallDate *string `json:"install_date"`
	Notes       *string `json:"notes"`
}

// ServiceSummaryResponse is one row of a view's service history.
type ServiceSummaryResponse struct {
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	Handler   string `json:"handler"`
}

// CustomerViewResponse is the assembled customer view plus derived fields.
type CustomerViewResponse struct {
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	InstallDate string `json:"install_date"`
	Notes       string `json:"notes"`

	ServiceID    string  `json:"service_id"`
	Status       string  `json:"status"`
	ServiceNotes string  `json:"service_notes"`
	Handler      string  `json:"handler"`
	NextService  *string `json:"next_service"`

	Priority      string  `json:"priority"`
	DaysUntil     string  `json:"days_until_service"`
	ContactStatus string  `json:"contact_status"`
	LastCompleted *string `json:"last_completed_service"`

	Services []ServiceSummaryResponse `json:"services"`
}
