package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendlink/internal/core/domain"
)

// CollaborationRepository implements port.CollaborationRepository using
// pgxpool.
type CollaborationRepository struct {
	pool *pgxpool.Pool
}

// NewCollaborationRepository returns a new repository instance.
func NewCollaborationRepository(pool *pgxpool.Pool) *CollaborationRepository {
	return &CollaborationRepository{pool: pool}
}

const collaborationColumns = `id, campaign_id, influencer_id, status, agreed_payment, performance,
invited_at, accepted_at, completed_at`

func scanCollaboration(row pgx.Row) (*domain.Collaboration, error) {
	var (
		c    domain.Collaboration
		perf []byte
	)
	err := row.Scan(
		&c.ID,
		&c.CampaignID,
		&c.InfluencerID,
		&c.Status,
		&c.AgreedPayment,
		&perf,
		&c.InvitedAt,
		&c.AcceptedAt,
		&c.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(perf, &c.Performance); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a collaboration. A repeated invite for the same campaign
// and influencer trips the unique constraint and surfaces as
// port.ErrDuplicate.
func (r *CollaborationRepository) Create(ctx context.Context, c *domain.Collaboration) error {
	perf, err := json.Marshal(c.Performance)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO collaborations
(id, campaign_id, influencer_id, status, agreed_payment, performance, invited_at, accepted_at, completed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.CampaignID, c.InfluencerID, c.Status, c.AgreedPayment, perf,
		c.InvitedAt, c.AcceptedAt, c.CompletedAt)
	return translateErr(err)
}

// Get returns a collaboration by id, (nil, nil) when absent.
func (r *CollaborationRepository) Get(ctx context.Context, id string) (*domain.Collaboration, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM collaborations WHERE id = $1`, collaborationColumns), id)
	c, err := scanCollaboration(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByCampaign returns all collaborations of a campaign, oldest invite
// first so downstream stable sorts keep a deterministic base order.
func (r *CollaborationRepository) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error) {
	return r.list(ctx, "campaign_id", campaignID)
}

// ListByInfluencer returns an influencer's collaboration history.
func (r *CollaborationRepository) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Collaboration, error) {
	return r.list(ctx, "influencer_id", influencerID)
}

func (r *CollaborationRepository) list(ctx context.Context, column, id string) ([]domain.Collaboration, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborations WHERE %s = $1 ORDER BY invited_at, id`,
		collaborationColumns, column)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Collaboration, error) {
		c, err := scanCollaboration(row)
		if err != nil {
			return domain.Collaboration{}, err
		}
		return *c, nil
	})
}

// Update persists the mutable collaboration fields.
func (r *CollaborationRepository) Update(ctx context.Context, c *domain.Collaboration) error {
	perf, err := json.Marshal(c.Performance)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE collaborations SET
status = $2, agreed_payment = $3, performance = $4, accepted_at = $5, completed_at = $6
WHERE id = $1`,
		c.ID, c.Status, c.AgreedPayment, perf, c.AcceptedAt, c.CompletedAt)
	return translateErr(err)
}

// CompleteAndRecordSpend stores the completed collaboration and adds its
// agreed payment to the campaign's spent budget in a single serializable
// transaction, locking the campaign row first.
func (r *CollaborationRepository) CompleteAndRecordSpend(ctx context.Context, c *domain.Collaboration) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var spent float64
	err = tx.QueryRow(ctx,
		`SELECT spent_budget FROM campaigns WHERE id = $1 FOR UPDATE`, c.CampaignID).Scan(&spent)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET spent_budget = spent_budget + $1, updated_at = now() WHERE id = $2`,
		c.AgreedPayment, c.CampaignID)
	if err != nil {
		return err
	}

	var perf []byte
	perf, err = json.Marshal(c.Performance)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE collaborations SET
status = $2, performance = $3, completed_at = $4
WHERE id = $1`,
		c.ID, c.Status, perf, c.CompletedAt)
	return err
}
