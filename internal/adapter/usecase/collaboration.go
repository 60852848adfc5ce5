package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// CollaborationService implements port.CollaborationUseCase. It owns the
// invite flow and the collaboration lifecycle, including budget allocation
// bookkeeping on the parent campaign.
type CollaborationService struct {
	collaborations port.CollaborationRepository
	campaigns      port.CampaignRepository
	influencers    port.InfluencerRepository
	notifier       *Notifier
}

// NewCollaborationService creates the collaboration service.
func NewCollaborationService(
	collaborations port.CollaborationRepository,
	campaigns port.CampaignRepository,
	influencers port.InfluencerRepository,
	notifier *Notifier,
) *CollaborationService {
	return &CollaborationService{
		collaborations: collaborations,
		campaigns:      campaigns,
		influencers:    influencers,
		notifier:       notifier,
	}
}

// Invite creates a collaboration in the invited status and reserves the
// agreed payment in the campaign's allocated budget.
func (s *CollaborationService) Invite(ctx context.Context, in port.InviteInput) (*domain.Collaboration, error) {
	if in.AgreedPayment < 0 {
		return nil, apperr.Validation("agreed payment must not be negative")
	}
	campaign, err := s.campaigns.Get(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperr.NotFound("campaign", in.CampaignID)
	}
	if campaign.Status == domain.CampaignCompleted || campaign.Status == domain.CampaignCancelled {
		return nil, apperr.BusinessRule("campaign_open",
			"cannot invite influencers to a %s campaign", campaign.Status)
	}
	influencer, err := s.influencers.Get(ctx, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if influencer == nil {
		return nil, apperr.NotFound("influencer", in.InfluencerID)
	}

	col := &domain.Collaboration{
		ID:            uuid.NewString(),
		CampaignID:    in.CampaignID,
		InfluencerID:  in.InfluencerID,
		Status:        domain.CollaborationInvited,
		AgreedPayment: in.AgreedPayment,
		InvitedAt:     time.Now().UTC(),
	}
	if err := s.collaborations.Create(ctx, col); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("influencer %s is already invited to campaign %s",
				in.InfluencerID, in.CampaignID)
		}
		return nil, err
	}

	campaign.AllocatedBudget += in.AgreedPayment
	campaign.UpdatedAt = time.Now().UTC()
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, in.InfluencerID, domain.NotificationCollaborationInvited,
		fmt.Sprintf("you have been invited to campaign %q", campaign.Name))
	return col, nil
}

// Get returns a collaboration or a not-found error.
func (s *CollaborationService) Get(ctx context.Context, id string) (*domain.Collaboration, error) {
	col, err := s.collaborations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, apperr.NotFound("collaboration", id)
	}
	return col, nil
}

// ListByCampaign returns all collaborations of a campaign.
func (s *CollaborationService) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error) {
	return s.collaborations.ListByCampaign(ctx, campaignID)
}

// PerformAction validates the requested transition against the
// collaboration table and persists the new status with its side fields.
// Completing a collaboration stores the reported performance and records
// the agreed payment against the campaign budget in one transaction;
// declining or cancelling releases the allocation. A request for the
// current status is a no-op.
func (s *CollaborationService) PerformAction(ctx context.Context, id string, action domain.CollaborationAction, perf *domain.PerformanceStats) (*domain.Collaboration, error) {
	target, ok := action.Target()
	if !ok {
		return nil, apperr.Validation("unknown collaboration action %q", action)
	}
	col, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if col.Status == target {
		return col, nil
	}
	if !domain.CanTransition(domain.CollaborationTransitions, col.Status, target) {
		return nil, apperr.InvalidTransition("collaboration", string(col.Status), string(target),
			statusStrings(domain.AllowedTransitions(domain.CollaborationTransitions, col.Status)))
	}

	now := time.Now().UTC()
	col.Status = target
	switch action {
	case domain.CollaborationActionAccept:
		col.AcceptedAt = &now
	case domain.CollaborationActionComplete:
		col.CompletedAt = &now
		if perf != nil {
			col.Performance = *perf
		}
	}

	if action == domain.CollaborationActionComplete {
		err = s.collaborations.CompleteAndRecordSpend(ctx, col)
	} else {
		err = s.collaborations.Update(ctx, col)
	}
	if err != nil {
		return nil, err
	}

	if action == domain.CollaborationActionDecline || action == domain.CollaborationActionCancel {
		s.releaseAllocation(ctx, col)
	}
	s.notifyAction(ctx, col, action)
	return col, nil
}

// releaseAllocation gives the reserved payment back to the campaign's
// allocatable budget. Failures are logged through the notifier's logger
// path by returning silently; the collaboration state change has already
// been persisted.
func (s *CollaborationService) releaseAllocation(ctx context.Context, col *domain.Collaboration) {
	campaign, err := s.campaigns.Get(ctx, col.CampaignID)
	if err != nil || campaign == nil {
		return
	}
	campaign.AllocatedBudget -= col.AgreedPayment
	if campaign.AllocatedBudget < 0 {
		campaign.AllocatedBudget = 0
	}
	campaign.UpdatedAt = time.Now().UTC()
	_ = s.campaigns.Update(ctx, campaign)
}

func (s *CollaborationService) notifyAction(ctx context.Context, col *domain.Collaboration, action domain.CollaborationAction) {
	// the campaign side is notified about influencer decisions, the
	// influencer about invitations and cancellations
	switch action {
	case domain.CollaborationActionAccept:
		s.notifier.Notify(ctx, col.CampaignID, domain.NotificationCollaborationAccepted,
			fmt.Sprintf("influencer %s accepted the collaboration", col.InfluencerID))
	case domain.CollaborationActionDecline:
		s.notifier.Notify(ctx, col.CampaignID, domain.NotificationCollaborationDeclined,
			fmt.Sprintf("influencer %s declined the collaboration", col.InfluencerID))
	case domain.CollaborationActionComplete:
		s.notifier.Notify(ctx, col.CampaignID, domain.NotificationCollaborationCompleted,
			fmt.Sprintf("influencer %s completed the collaboration", col.InfluencerID))
	case domain.CollaborationActionCancel:
		s.notifier.Notify(ctx, col.InfluencerID, domain.NotificationCollaborationCancelled,
			"a collaboration you were part of has been cancelled")
	}
}
