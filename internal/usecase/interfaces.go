package usecase

import (
	"context"
	"time"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

// LeadFilter is the AND-combined criteria set for list/count queries.
// Search matches name OR email OR phone. Nil time bounds mean unbounded.
type LeadFilter struct {
	Status  string
	Program string
	Search  string
	From    *time.Time
	To      *time.Time
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, filter LeadFilter, offset, limit int) ([]*entity.Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error)
	Delete(ctx context.Context, id string) error
}

// EmailService sends the two intake emails independently of each other.
type EmailService interface {
	SendLeadAlert(lead *entity.Lead) error
	SendConfirmation(lead *entity.Lead) error
}

// LeadNotifier dispatches the post-persistence notification. Implementations
// are best-effort: the intake flow logs and swallows any error returned here.
type LeadNotifier interface {
	NotifyLeadCaptured(ctx context.Context, lead *entity.Lead) error
}
