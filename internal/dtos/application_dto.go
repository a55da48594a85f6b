package dtos

import "time"

// ApplicationRequest is the payload for direct creation and for
// full-record update. Required fields mirror the storage constraints.
type ApplicationRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Position    string `json:"position" binding:"required"`
	JobURL      string `json:"jobUrl" binding:"required"`

	// Optional Fields
	JobWebsite    string     `json:"jobWebsite"`
	Status        string     `json:"status"` // Defaults to "APPLIED" if empty
	AppliedDate   *time.Time `json:"appliedDate"`
	Location      string     `json:"location"`
	Salary        string     `json:"salary"`
	ContactPerson string     `json:"contactPerson"`
	ContactEmail  string     `json:"contactEmail"`
	Notes         string     `json:"notes"`
}
