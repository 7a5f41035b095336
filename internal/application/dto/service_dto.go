package dto

// ContactActionRequest drives the service state machine for one customer.
type ContactActionRequest struct {
	ServiceID        string `json:"service_id" validate:"required"`
	Action           string `json:"action" validate:"required"`
	Notes            string `json:"notes"`
	PostponeDuration string `json:"postpone_duration"` // 1w, 1m, 3m, 6m
	RefusalFollowUp  string `json:"refusal_follow_up"` // never, 1y, 2y
}

// UpdateServiceRequest patches a historical service record.
type UpdateServiceRequest struct {
	Date    *string `json:"date"`
	Notes   *string `json:"notes"`
	Handler *string `json:"handler"`
}

// ServiceResponse is a single service record.
type ServiceResponse struct {
	ServiceID  string `json:"service_id"`
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	Handler    string `json:"handler"`
}
