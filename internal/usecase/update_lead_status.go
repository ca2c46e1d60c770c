package usecase

import (
	"context"
	"errors"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute moves a lead to any of the four statuses. There are no forbidden
// transitions; only the target value itself is checked.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, status string) (*entity.Lead, error) {
	if id == "" || !entity.IsValidStatus(status) {
		return nil, &DomainError{
			Code:    CodeInvalidStatus,
			Message: "Invalid id or status",
		}
	}

	lead, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    CodeLeadNotFound,
				Message: "Lead not found",
			}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return lead, nil
}
