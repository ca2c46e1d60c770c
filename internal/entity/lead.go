package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status values of a lead in the admissions funnel.
const (
	StatusNew           = "new"
	StatusContacted     = "contacted"
	StatusEnrolled      = "enrolled"
	StatusNotInterested = "not_interested"
)

var ErrLeadNotFound = errors.New("lead not found")

var ValidStatuses = []string{StatusNew, StatusContacted, StatusEnrolled, StatusNotInterested}

// IsValidStatus reports whether s is one of the four persisted status values.
// Any transition between valid statuses is allowed; only creation fixes "new".
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Lead struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"-"` // store-assigned insertion sequence
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Program   string    `json:"program"`
	State     string    `json:"state,omitempty"`
	City      string    `json:"city,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	IPAddress string    `json:"ipAddress,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Factory
func NewLead(name, email, phone, program, state, city, message, source, ipAddress string) *Lead {
	now := time.Now()
	if source == "" {
		source = "website"
	}
	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Program:   program,
		State:     state,
		City:      city,
		Message:   message,
		Status:    StatusNew,
		Source:    source,
		IPAddress: ipAddress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
