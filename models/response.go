package models

type RegisterSuccessResponse struct {
	Message  string   `json:"message" example:"Registration complete. Save your ticket."`
	Attendee Attendee `json:"attendee"`
}

type GateLoginSuccessResponse struct {
	Message  string `json:"message" example:"Gate opened"`
	Token    string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	Operator string `json:"operator" example:"Ravi"`
}

type TicketResponse struct {
	Attendee            Attendee `json:"attendee"`
	QRCodeImage         string   `json:"qr_code_image" example:"data:image/png;base64,iVBOR..."`
	LastScannedAtLocal  string   `json:"last_scanned_at_local,omitempty" example:"2 Dec, 06:15:04 pm"`
}

type ScanLookupResponse struct {
	Message  string   `json:"message" example:"Verify identity"`
	Attendee Attendee `json:"attendee"`
	// Inside is the state the pending verification was captured from.
	Inside bool `json:"inside"`
}

type ScanConfirmResponse struct {
	Message   string `json:"message" example:"CHECK-IN SUCCESS: Asha Rao"`
	ScanType  string `json:"scan_type" example:"IN"`
	NewStatus string `json:"new_status" example:"checked_in"`
	Venue     string `json:"venue" example:"Hall A"`
}

type ScanHistoryListResponse struct {
	Entries []ScanHistoryEntry `json:"entries"`
	Total   int64              `json:"total" example:"42"`
	Page    int64              `json:"page" example:"1"`
	Limit   int64              `json:"limit" example:"20"`
}

type AttendeeListResponse struct {
	Attendees []Attendee `json:"attendees"`
	Total     int64      `json:"total" example:"120"`
	Page      int64      `json:"page" example:"1"`
	Limit     int64      `json:"limit" example:"20"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Ticket not found"`
}

type ConflictErrorResponse struct {
	Error string `json:"error" example:"Attendee was scanned by someone else. Please rescan."`
}
