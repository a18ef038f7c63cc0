package domain

import (
	"errors"
	"time"
)

// ReportStatus represents the lifecycle state of an issue report.
type ReportStatus string

const (
	StatusSubmitted  ReportStatus = "Submitted"
	StatusInProgress ReportStatus = "In Progress"
	StatusResolved   ReportStatus = "Resolved"
	StatusClosed     ReportStatus = "Closed"
)

// Valid reports whether s is a recognized status. Any status is reachable
// from any other via a manager reply; there is no transition table.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// EmployeeType classifies the reporting employee's contract.
type EmployeeType string

const (
	FullTime   EmployeeType = "Full-Time"
	PartTime   EmployeeType = "Part-Time"
	Contractor EmployeeType = "Contractor"
	Intern     EmployeeType = "Intern"
)

// Valid reports whether t is a recognized employee type.
func (t EmployeeType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contractor, Intern:
		return true
	}
	return false
}

// Departments is the fixed set of departments a report can be routed to.
var Departments = []string{"IT", "HR", "Facilities", "Maintenance", "Operations", "Finance", "Legal"}

// ValidDepartment reports whether name is one of the recognized departments.
func ValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrReportNotFound     = errors.New("report not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPasscode    = errors.New("invalid passcode")

	// ErrUpstream wraps failures of the external document or blob store.
	// The provider's message is carried through untranslated so operators
	// can diagnose the underlying complaint.
	ErrUpstream = errors.New("upstream store error")
)

// Report is the core aggregate: one issue submitted by an employee,
// optionally answered by a manager. SubmittedBy is immutable; only a
// manager reply mutates Reply, Status and RepliedAt.
type Report struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	EmployeeName string       `json:"employee_name" bson:"employee_name"`
	EmployeeCode string       `json:"employee_code" bson:"employee_code"`
	EmployeeType EmployeeType `json:"employee_type" bson:"employee_type"`
	Department   string       `json:"department" bson:"department"`
	Description  string       `json:"description" bson:"description"`
	ImageURL     string       `json:"image_url" bson:"image_url"`
	Status       ReportStatus `json:"status" bson:"status"`
	SubmittedAt  time.Time    `json:"submitted_at" bson:"submitted_at"`
	SubmittedBy  string       `json:"submitted_by" bson:"submitted_by"`
	Reply        string       `json:"reply,omitempty" bson:"reply,omitempty"`
	RepliedAt    *time.Time   `json:"replied_at,omitempty" bson:"replied_at,omitempty"`
}
