package usecase

import "github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"

type SubmitEnquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Program string `json:"program"`
	State   string `json:"state"`
	City    string `json:"city"`
	Message string `json:"message"`
	Source  string `json:"source"`

	// Collected by some legacy form variants but never persisted.
	// Accepted here so those forms keep working, then discarded.
	DOB        string `json:"dob"`
	Passed12th string `json:"passed12th"`

	// Transport-level origin, captured by the handler.
	IPAddress string `json:"-"`
}

type SubmitEnquiryOutput struct {
	LeadID string `json:"leadId"`
}

type ListLeadsInput struct {
	Page    int
	Limit   int
	Status  string
	Program string
	Search  string
	From    string // YYYY-MM-DD, inclusive
	To      string // YYYY-MM-DD, inclusive up to 23:59:59
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// StatusCounts is the dashboard-wide breakdown. It is always computed over
// the whole collection, independent of the active filter, so the dashboard
// counters stay stable while the admin narrows the list.
type StatusCounts struct {
	Total         int `json:"total"`
	New           int `json:"new"`
	Contacted     int `json:"contacted"`
	Enrolled      int `json:"enrolled"`
	NotInterested int `json:"not_interested"`
}

type ListLeadsOutput struct {
	Leads      []*entity.Lead `json:"leads"`
	Pagination Pagination     `json:"pagination"`
	Stats      StatusCounts   `json:"stats"`
}
