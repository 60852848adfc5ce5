package port

import (
	"context"
	"errors"

	"trendlink/internal/core/domain"
)

// ErrDuplicate is returned by repositories when an insert violates a
// unique constraint (campaign name, influencer handle, repeated invite).
var ErrDuplicate = errors.New("duplicate record")

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Status *domain.CampaignStatus
	Limit  int
	Offset int
}

// InfluencerFilter narrows influencer listings.
type InfluencerFilter struct {
	Platform     string
	Category     string
	Availability *domain.Availability
	Limit        int
	Offset       int
}

// CampaignRepository is the outbound port for campaign persistence. Get
// returns (nil, nil) when the campaign does not exist.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
}

// InfluencerRepository is the outbound port for influencer persistence.
type InfluencerRepository interface {
	Create(ctx context.Context, i *domain.Influencer) error
	Get(ctx context.Context, id string) (*domain.Influencer, error)
	List(ctx context.Context, f InfluencerFilter) ([]domain.Influencer, error)
	Update(ctx context.Context, i *domain.Influencer) error
}

// CollaborationRepository is the outbound port for collaboration
// persistence.
type CollaborationRepository interface {
	Create(ctx context.Context, c *domain.Collaboration) error
	Get(ctx context.Context, id string) (*domain.Collaboration, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error)
	ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Collaboration, error)
	Update(ctx context.Context, c *domain.Collaboration) error
	// CompleteAndRecordSpend persists the completed collaboration and adds
	// its agreed payment to the campaign's spent budget in one transaction.
	CompleteAndRecordSpend(ctx context.Context, c *domain.Collaboration) error
}

// NotificationRepository stores and reads in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
