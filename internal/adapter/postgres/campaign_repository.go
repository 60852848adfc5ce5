package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, description, status, total_budget, allocated_budget, spent_budget,
platforms, keywords, start_date, end_date, launch_date, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		platforms []byte
		keywords  []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Status,
		&c.TotalBudget,
		&c.AllocatedBudget,
		&c.SpentBudget,
		&platforms,
		&keywords,
		&c.StartDate,
		&c.EndDate,
		&c.LaunchDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(platforms, &c.Platforms); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(keywords, &c.Keywords); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a campaign.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	platforms, err := json.Marshal(stringsOrEmpty(c.Platforms))
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(stringsOrEmpty(c.Keywords))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
(id, name, description, status, total_budget, allocated_budget, spent_budget,
 platforms, keywords, start_date, end_date, launch_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.Name, c.Description, c.Status, c.TotalBudget, c.AllocatedBudget, c.SpentBudget,
		platforms, keywords, c.StartDate, c.EndDate, c.LaunchDate, c.CreatedAt, c.UpdatedAt)
	return translateErr(err)
}

// Get returns a campaign by id, (nil, nil) when absent.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns campaigns matching the filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns`, campaignColumns)
	args := []any{}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Update persists all mutable campaign fields.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	platforms, err := json.Marshal(stringsOrEmpty(c.Platforms))
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(stringsOrEmpty(c.Keywords))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE campaigns SET
name = $2, description = $3, status = $4, total_budget = $5, allocated_budget = $6,
spent_budget = $7, platforms = $8, keywords = $9, start_date = $10, end_date = $11,
launch_date = $12, updated_at = $13
WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Status, c.TotalBudget, c.AllocatedBudget,
		c.SpentBudget, platforms, keywords, c.StartDate, c.EndDate, c.LaunchDate, c.UpdatedAt)
	return translateErr(err)
}

// stringsOrEmpty keeps JSONB columns as [] rather than null.
func stringsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
