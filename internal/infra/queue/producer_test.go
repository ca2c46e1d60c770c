package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

func TestNotificationPayloadCarriesEverythingTheEmailsNeed(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	payload := NotificationPayload{
		LeadID:    "lead-1",
		Name:      "Jo Doe",
		Email:     "jo@x.com",
		Phone:     "9876543210",
		Program:   "MBA",
		City:      "Delhi",
		Message:   "please call",
		CreatedAt: created,
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var decoded NotificationPayload
	assert.NoError(t, json.Unmarshal(body, &decoded))

	lead := decoded.ToLead()
	assert.Equal(t, &entity.Lead{
		ID:        "lead-1",
		Name:      "Jo Doe",
		Email:     "jo@x.com",
		Phone:     "9876543210",
		Program:   "MBA",
		City:      "Delhi",
		Message:   "please call",
		CreatedAt: created,
	}, lead)
}
