package port

import (
	"context"
	"time"

	"trendlink/internal/core/domain"
)

// CreateCampaignInput carries the fields a client supplies when creating a
// campaign. New campaigns always start in draft.
type CreateCampaignInput struct {
	Name        string
	Description string
	TotalBudget float64
	Platforms   []string
	Keywords    []string
	StartDate   time.Time
	EndDate     time.Time
}

// UpdateCampaignInput carries the mutable campaign fields. Nil pointers
// leave the stored value untouched.
type UpdateCampaignInput struct {
	Name        *string
	Description *string
	TotalBudget *float64
	Platforms   []string
	Keywords    []string
	StartDate   *time.Time
	EndDate     *time.Time
}

// CampaignUseCase is the inbound port for campaign CRUD and lifecycle
// actions.
type CampaignUseCase interface {
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Update(ctx context.Context, id string, in UpdateCampaignInput) (*domain.Campaign, error)
	// PerformAction runs a named lifecycle action (activate, pause, resume,
	// complete, cancel) and returns the updated campaign.
	PerformAction(ctx context.Context, id string, action domain.CampaignAction) (*domain.Campaign, error)
}

// CreateInfluencerInput carries the fields supplied when registering an
// influencer.
type CreateInfluencerInput struct {
	FullName     string
	Handle       string
	Verified     bool
	QualityScore int
	Audiences    []domain.PlatformAudience
	Categories   []string
}

// UpdateInfluencerInput carries the mutable influencer fields.
type UpdateInfluencerInput struct {
	FullName     *string
	Verified     *bool
	QualityScore *int
	Audiences    []domain.PlatformAudience
	Categories   []string
	Availability *domain.Availability
}

// InfluencerUseCase is the inbound port for influencer CRUD.
type InfluencerUseCase interface {
	Create(ctx context.Context, in CreateInfluencerInput) (*domain.Influencer, error)
	Get(ctx context.Context, id string) (*domain.Influencer, error)
	List(ctx context.Context, f InfluencerFilter) ([]domain.Influencer, error)
	Update(ctx context.Context, id string, in UpdateInfluencerInput) (*domain.Influencer, error)
}

// InviteInput creates a collaboration in the invited status.
type InviteInput struct {
	CampaignID    string
	InfluencerID  string
	AgreedPayment float64
}

// CollaborationUseCase is the inbound port for collaboration lifecycle
// management.
type CollaborationUseCase interface {
	Invite(ctx context.Context, in InviteInput) (*domain.Collaboration, error)
	Get(ctx context.Context, id string) (*domain.Collaboration, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error)
	// PerformAction runs a named lifecycle action (accept, decline, start,
	// complete, cancel). The performance payload is only consulted by
	// complete and may be nil.
	PerformAction(ctx context.Context, id string, action domain.CollaborationAction, perf *domain.PerformanceStats) (*domain.Collaboration, error)
}

// AnalyticsUseCase produces reports from already-persisted entities. Every
// method returns (nil, nil) when the root entity does not exist; callers
// map that to 404.
type AnalyticsUseCase interface {
	CampaignAnalytics(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error)
	CampaignTrends(ctx context.Context, campaignID string, periodDays int) (*domain.TrendReport, error)
	CompareCampaigns(ctx context.Context, campaignIDs []string) (*domain.ComparisonReport, error)
	InfluencerAnalytics(ctx context.Context, influencerID string) (*domain.InfluencerAnalytics, error)
}

// MatchingUseCase scores influencers against campaigns.
type MatchingUseCase interface {
	BestMatches(ctx context.Context, campaignID string, limit int) ([]domain.MatchResult, error)
	Score(ctx context.Context, campaignID, influencerID string) (*domain.MatchResult, error)
}

// NotificationUseCase reads and acknowledges in-app notifications.
type NotificationUseCase interface {
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
