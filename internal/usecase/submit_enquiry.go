package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

const notifyTimeout = 15 * time.Second

type SubmitEnquiryUseCase struct {
	Repo     LeadRepositoryInterface
	Notifier LeadNotifier // nil disables notification entirely
}

func NewSubmitEnquiryUseCase(repo LeadRepositoryInterface, notifier LeadNotifier) *SubmitEnquiryUseCase {
	return &SubmitEnquiryUseCase{
		Repo:     repo,
		Notifier: notifier,
	}
}

// Execute validates and persists one enquiry, then dispatches notification.
// Validation failure aborts before any side effect. Persistence failure is
// fatal for the request. Notification failure is invisible to the caller:
// by then the lead is already recorded.
func (uc *SubmitEnquiryUseCase) Execute(ctx context.Context, input SubmitEnquiryInput) (*SubmitEnquiryOutput, error) {
	if err := ValidateEnquiryInput(input); err != nil {
		return nil, err
	}

	// dob/passed12th from the legacy forms are dropped here: the payload
	// carries them but no field of the lead record does.
	lead := entity.NewLead(
		strings.TrimSpace(input.Name),
		strings.ToLower(strings.TrimSpace(input.Email)),
		stripSpaces(input.Phone),
		strings.TrimSpace(input.Program),
		strings.TrimSpace(input.State),
		strings.TrimSpace(input.City),
		strings.TrimSpace(input.Message),
		strings.TrimSpace(input.Source),
		input.IPAddress,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: err.Error(),
		}
	}

	if uc.Notifier != nil {
		// Detached from the request: the response is already determined.
		go func(l *entity.Lead) {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := uc.Notifier.NotifyLeadCaptured(nctx, l); err != nil {
				log.Printf("⚠️ notification failed (lead %s already saved): %v", l.ID, err)
			}
		}(lead)
	}

	return &SubmitEnquiryOutput{LeadID: lead.ID}, nil
}
