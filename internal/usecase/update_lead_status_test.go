package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

func TestUpdateLeadStatusAllTargets(t *testing.T) {
	ctx := context.Background()

	// Every status is reachable from any other; the use case only checks
	// the target value.
	for _, status := range entity.ValidStatuses {
		t.Run(status, func(t *testing.T) {
			mockRepo := new(MockLeadRepository)
			mockRepo.On("UpdateStatus", ctx, "lead-1", status).
				Return(&entity.Lead{ID: "lead-1", Status: status}, nil)

			uc := NewUpdateLeadStatusUseCase(mockRepo)

			lead, err := uc.Execute(ctx, "lead-1", status)

			assert.NoError(t, err)
			assert.Equal(t, status, lead.Status)
		})
	}
}

func TestUpdateLeadStatusRejectsUnknownStatus(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	uc := NewUpdateLeadStatusUseCase(mockRepo)

	lead, err := uc.Execute(context.Background(), "lead-1", "converted")

	assert.Nil(t, lead)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, "Invalid id or status", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateLeadStatusRejectsEmptyID(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	uc := NewUpdateLeadStatusUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), "", entity.StatusContacted)

	assert.True(t, IsDomainError(err))
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateLeadStatusNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "ghost", entity.StatusEnrolled).
		Return(nil, entity.ErrLeadNotFound)

	uc := NewUpdateLeadStatusUseCase(mockRepo)

	lead, err := uc.Execute(ctx, "ghost", entity.StatusEnrolled)

	assert.Nil(t, lead)
	assert.True(t, IsNotFound(err))
}
