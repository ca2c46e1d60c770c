package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("converted"))
	assert.False(t, IsValidStatus("New"))
}

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead("Jo Doe", "jo@x.com", "9876543210", "MBA", "", "Delhi", "", "", "203.0.113.7")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, StatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
}

func TestNewLeadKeepsCallerSource(t *testing.T) {
	lead := NewLead("Jo Doe", "jo@x.com", "9876543210", "MBA", "Punjab", "", "", "cu-online", "")

	assert.Equal(t, "cu-online", lead.Source)
}

func TestNewLeadUniqueIDs(t *testing.T) {
	a := NewLead("A B", "a@x.com", "9876543210", "MBA", "", "Delhi", "", "", "")
	b := NewLead("C D", "c@x.com", "9876543211", "MBA", "", "Delhi", "", "", "")

	assert.NotEqual(t, a.ID, b.ID)
}
