package usecase

import (
	"context"
	"errors"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewDeleteLeadUseCase(repo LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

// Execute hard-deletes a lead. No tombstone, no audit trail: a deleted id
// behaves exactly like one that never existed.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	if id == "" {
		return &DomainError{
			Code:    CodeValidation,
			Message: "ID is required",
		}
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{
				Code:    CodeLeadNotFound,
				Message: "Lead not found",
			}
		}
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return nil
}
