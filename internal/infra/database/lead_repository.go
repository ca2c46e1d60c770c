package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/usecase"
)

const leadColumns = "id, seq, name, email, phone, program, state, city, message, status, source, ip_address, created_at, updated_at"

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, program, state, city, message, status, source, ip_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING seq
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Program,
		lead.State,
		lead.City,
		lead.Message,
		lead.Status,
		lead.Source,
		lead.IPAddress,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.Seq)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context, filter usecase.LeadFilter, offset, limit int) ([]*entity.Lead, error) {
	where, args := buildWhere(filter)

	// Newest first; the insertion sequence breaks created_at ties.
	query := fmt.Sprintf(
		`SELECT %s FROM leads%s ORDER BY created_at DESC, seq ASC LIMIT $%d OFFSET $%d`,
		leadColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Count(ctx context.Context, filter usecase.LeadFilter) (int, error) {
	where, args := buildWhere(filter)

	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`+where, args...).Scan(&total)
	return total, err
}

// CountByStatus is always unfiltered: it feeds the dashboard-wide counters.
func (r *LeadRepository) CountByStatus(ctx context.Context) (usecase.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'contacted'),
			COUNT(*) FILTER (WHERE status = 'enrolled'),
			COUNT(*) FILTER (WHERE status = 'not_interested')
		FROM leads
	`

	var stats usecase.StatusCounts
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.New,
		&stats.Contacted,
		&stats.Enrolled,
		&stats.NotInterested,
	)
	return stats, err
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, status))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func buildWhere(filter usecase.LeadFilter) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Program != "" {
		args = append(args, "%"+filter.Program+"%")
		conds = append(conds, fmt.Sprintf("program ILIKE $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Seq,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Program,
		&lead.State,
		&lead.City,
		&lead.Message,
		&lead.Status,
		&lead.Source,
		&lead.IPAddress,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
