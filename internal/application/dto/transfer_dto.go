package dto

// ImportConflictResponse is one pending merge decision during an import.
type ImportConflictResponse struct {
	ConflictID string `json:"conflict_id"`
	Reason     string `json:"reason"` // phone_match, name_address_match

	ExistingCustomerID string `json:"existing_customer_id"`
	ExistingName       string `json:"existing_name"`

	IncomingName        string `json:"incoming_name"`
	IncomingAddress     string `json:"incoming_address"`
	IncomingPhone       string `json:"incoming_phone"`
	IncomingCity        string `json:"incoming_city"`
	IncomingInstallDate string `json:"incoming_install_date"`
	IncomingNotes       string `json:"incoming_notes"`
}

// ImportStatusResponse reports an import session's progress. Committed is true
// once the staged rows have been batch-written; until then nothing has touched
// the store.
type ImportStatusResponse struct {
	SessionID string                   `json:"session_id"`
	Staged    int                      `json:"staged"`
	Skipped   int                      `json:"skipped"`
	Conflicts []ImportConflictResponse `json:"conflicts"`
	Committed bool                     `json:"committed"`
	Imported  int                      `json:"imported"`
	Updated   int                      `json:"updated"`
}

// ResolveConflictRequest supplies the decision for a pending conflict.
type ResolveConflictRequest struct {
	ConflictID       string `json:"conflict_id" validate:"required"`
	Decision         string `json:"decision" validate:"required,oneof=skip add_duplicate update_existing"`
	ApplyToRemaining bool   `json:"apply_to_remaining"`
}
