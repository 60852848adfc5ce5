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

// InfluencerRepository implements port.InfluencerRepository using pgxpool.
type InfluencerRepository struct {
	pool *pgxpool.Pool
}

// NewInfluencerRepository returns a new repository instance.
func NewInfluencerRepository(pool *pgxpool.Pool) *InfluencerRepository {
	return &InfluencerRepository{pool: pool}
}

const influencerColumns = `id, full_name, handle, verified, quality_score, audiences, categories,
availability, created_at, updated_at`

func scanInfluencer(row pgx.Row) (*domain.Influencer, error) {
	var (
		i          domain.Influencer
		audiences  []byte
		categories []byte
	)
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Handle,
		&i.Verified,
		&i.QualityScore,
		&audiences,
		&categories,
		&i.Availability,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(audiences, &i.Audiences); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(categories, &i.Categories); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts an influencer.
func (r *InfluencerRepository) Create(ctx context.Context, i *domain.Influencer) error {
	audiences, err := json.Marshal(audiencesOrEmpty(i.Audiences))
	if err != nil {
		return err
	}
	categories, err := json.Marshal(stringsOrEmpty(i.Categories))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO influencers
(id, full_name, handle, verified, quality_score, audiences, categories, availability, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		i.ID, i.FullName, i.Handle, i.Verified, i.QualityScore, audiences, categories,
		i.Availability, i.CreatedAt, i.UpdatedAt)
	return translateErr(err)
}

// Get returns an influencer by id, (nil, nil) when absent.
func (r *InfluencerRepository) Get(ctx context.Context, id string) (*domain.Influencer, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM influencers WHERE id = $1`, influencerColumns), id)
	i, err := scanInfluencer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

// List returns influencers matching the filter. Platform and category
// filters match against the JSONB audience and category documents.
func (r *InfluencerRepository) List(ctx context.Context, f port.InfluencerFilter) ([]domain.Influencer, error) {
	query := fmt.Sprintf(`SELECT %s FROM influencers`, influencerColumns)
	args := []any{}
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.Availability != nil {
		args = append(args, *f.Availability)
		and(fmt.Sprintf("availability = $%d", len(args)))
	}
	if f.Platform != "" {
		args = append(args, f.Platform)
		and(fmt.Sprintf(`audiences @> jsonb_build_array(jsonb_build_object('platform', $%d::text))`, len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		and(fmt.Sprintf(`categories ? $%d`, len(args)))
	}
	query += where + " ORDER BY created_at DESC"
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
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Influencer, error) {
		i, err := scanInfluencer(row)
		if err != nil {
			return domain.Influencer{}, err
		}
		return *i, nil
	})
}

// Update persists all mutable influencer fields.
func (r *InfluencerRepository) Update(ctx context.Context, i *domain.Influencer) error {
	audiences, err := json.Marshal(audiencesOrEmpty(i.Audiences))
	if err != nil {
		return err
	}
	categories, err := json.Marshal(stringsOrEmpty(i.Categories))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE influencers SET
full_name = $2, verified = $3, quality_score = $4, audiences = $5, categories = $6,
availability = $7, updated_at = $8
WHERE id = $1`,
		i.ID, i.FullName, i.Verified, i.QualityScore, audiences, categories,
		i.Availability, i.UpdatedAt)
	return translateErr(err)
}

func audiencesOrEmpty(in []domain.PlatformAudience) []domain.PlatformAudience {
	if in == nil {
		return []domain.PlatformAudience{}
	}
	return in
}
