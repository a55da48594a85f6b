package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus is the lifecycle state of a tracked application.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusOffered      ApplicationStatus = "OFFERED"
	StatusRejected     ApplicationStatus = "REJECTED"
	StatusAccepted     ApplicationStatus = "ACCEPTED"
)

// ParseStatus maps a raw string onto the status enum.
func ParseStatus(s string) (ApplicationStatus, bool) {
	switch status := ApplicationStatus(s); status {
	case StatusApplied, StatusInterviewing, StatusOffered, StatusRejected, StatusAccepted:
		return status, true
	}
	return "", false
}

// JobApplication is one tracked job application. Required text fields
// hold the literal "Unknown" rather than being empty when extraction
// could not find them.
type JobApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyName string `gorm:"size:255;not null" json:"companyName"`
	Position    string `gorm:"size:255;not null" json:"position"`
	JobURL      string `gorm:"size:1000;not null" json:"jobUrl"`
	JobWebsite  string `gorm:"size:1000" json:"jobWebsite,omitempty"`

	Status ApplicationStatus `gorm:"size:32;not null;default:'APPLIED'" json:"status"`

	AppliedTime time.Time  `gorm:"not null" json:"appliedTime"`
	AppliedDate *time.Time `json:"appliedDate"`

	Location      string `gorm:"size:255" json:"location"`
	Salary        string `gorm:"size:255" json:"salary"`
	ContactPerson string `gorm:"size:255" json:"contactPerson"`
	ContactEmail  string `gorm:"size:255" json:"contactEmail"`
	Notes         string `gorm:"size:4000" json:"notes"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}

// BeforeCreate stamps AppliedTime exactly once; update paths never
// touch it again.
func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.AppliedTime.IsZero() {
		a.AppliedTime = time.Now()
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	return nil
}
