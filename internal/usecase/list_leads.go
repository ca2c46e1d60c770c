package usecase

import (
	"context"
	"time"
)

const DefaultPageSize = 20

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute returns one page of matching leads plus pagination metadata and
// the dashboard-wide status breakdown. The breakdown deliberately ignores
// the filter (see StatusCounts).
func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	filter := LeadFilter{
		Status:  input.Status,
		Program: input.Program,
		Search:  input.Search,
		From:    parseDay(input.From, false),
		To:      parseDay(input.To, true),
	}

	leads, err := uc.Repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	stats, err := uc.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	totalPages := (total + limit - 1) / limit

	return &ListLeadsOutput{
		Leads: leads,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page*limit < total,
			HasPrev:    page > 1,
		},
		Stats: stats,
	}, nil
}

// parseDay parses a YYYY-MM-DD bound. The upper bound is inclusive of the
// whole calendar day, so it is pushed to 23:59:59. Unparseable input drops
// the bound rather than failing the query.
func parseDay(s string, endOfDay bool) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return &t
}
