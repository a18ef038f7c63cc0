package handler

import "time"

// Request/response types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes.

type createReportRequest struct {
	EmployeeName string `json:"employee_name" validate:"required"`
	EmployeeCode string `json:"employee_code" validate:"required"`
	EmployeeType string `json:"employee_type" validate:"required,oneof=Full-Time Part-Time Contractor Intern"`
	Department   string `json:"department"    validate:"required,oneof=IT HR Facilities Maintenance Operations Finance Legal"`
	Description  string `json:"description"   validate:"required,min=10"`
	// Image is either a retrieval URL or a base64 data URI.
	Image string `json:"image" validate:"required"`
}

type replyRequest struct {
	Reply  string `json:"reply"  validate:"required"`
	Status string `json:"status" validate:"required,oneof=Submitted 'In Progress' Resolved Closed"`
}

type suggestDepartmentRequest struct {
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

type suggestDepartmentResponse struct {
	Suggestion string `json:"suggestion"`
}

type reportResponse struct {
	ID           string     `json:"id"`
	EmployeeName string     `json:"employee_name"`
	EmployeeCode string     `json:"employee_code"`
	EmployeeType string     `json:"employee_type"`
	Department   string     `json:"department"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	SubmittedBy  string     `json:"submitted_by"`
	Reply        string     `json:"reply,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
}

type listReportsResponse struct {
	Data []reportResponse `json:"data"`
}
