package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

func testInfluencer(id string) *domain.Influencer {
	return &domain.Influencer{
		ID:       id,
		FullName: "Jane Creator",
		Handle:   "@jane",
		Audiences: []domain.PlatformAudience{
			{Platform: "instagram", Followers: 50_000, EngagementRate: 4.2},
		},
	}
}

func invitedCollaboration(id string) *domain.Collaboration {
	return &domain.Collaboration{
		ID:            id,
		CampaignID:    "c1",
		InfluencerID:  "i1",
		Status:        domain.CollaborationInvited,
		AgreedPayment: 500,
		InvitedAt:     time.Now().UTC(),
	}
}

func newCollaborationFixture(t *testing.T, cols ...*domain.Collaboration) (*CollaborationService, *fakeCampaignRepo, *fakeCollaborationRepo, *fakeNotificationRepo) {
	t.Helper()
	c := draftCampaign("c1")
	c.Status = domain.CampaignActive
	campaigns := newFakeCampaignRepo(c)
	influencers := newFakeInfluencerRepo(testInfluencer("i1"))
	collaborations := newFakeCollaborationRepo(cols...)
	notifications := &fakeNotificationRepo{}
	svc := NewCollaborationService(collaborations, campaigns, influencers, testNotifier(t, notifications))
	return svc, campaigns, collaborations, notifications
}

func TestInviteReservesAllocation(t *testing.T) {
	svc, campaigns, _, notifications := newCollaborationFixture(t)

	col, err := svc.Invite(context.Background(), port.InviteInput{
		CampaignID:    "c1",
		InfluencerID:  "i1",
		AgreedPayment: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationInvited, col.Status)

	updated, _ := campaigns.Get(context.Background(), "c1")
	assert.Equal(t, 500.0, updated.AllocatedBudget)

	require.Len(t, notifications.notifications, 1)
	assert.Equal(t, "i1", notifications.notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationCollaborationInvited, notifications.notifications[0].Kind)
}

func TestInviteRejectsClosedCampaign(t *testing.T) {
	svc, campaigns, _, _ := newCollaborationFixture(t)
	c, _ := campaigns.Get(context.Background(), "c1")
	c.Status = domain.CampaignCompleted
	require.NoError(t, campaigns.Update(context.Background(), c))

	_, err := svc.Invite(context.Background(), port.InviteInput{CampaignID: "c1", InfluencerID: "i1"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindBusinessRule, appErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
}

func TestInviteDuplicateIsConflict(t *testing.T) {
	svc, _, collaborations, _ := newCollaborationFixture(t)
	collaborations.createErr = port.ErrDuplicate

	_, err := svc.Invite(context.Background(), port.InviteInput{CampaignID: "c1", InfluencerID: "i1"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestInviteUnknownInfluencer(t *testing.T) {
	svc, _, _, _ := newCollaborationFixture(t)

	_, err := svc.Invite(context.Background(), port.InviteInput{CampaignID: "c1", InfluencerID: "ghost"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestAcceptSetsTimestampAndNotifies(t *testing.T) {
	svc, _, _, notifications := newCollaborationFixture(t, invitedCollaboration("col1"))

	col, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionAccept, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationAccepted, col.Status)
	require.NotNil(t, col.AcceptedAt)

	require.Len(t, notifications.notifications, 1)
	assert.Equal(t, "c1", notifications.notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationCollaborationAccepted, notifications.notifications[0].Kind)
}

func TestCompleteRecordsSpendAndPerformance(t *testing.T) {
	active := invitedCollaboration("col1")
	active.Status = domain.CollaborationActive
	svc, _, collaborations, _ := newCollaborationFixture(t, active)

	perf := &domain.PerformanceStats{Reach: 40_000, Engagement: 2500, Impressions: 60_000}
	col, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionComplete, perf)
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationCompleted, col.Status)
	require.NotNil(t, col.CompletedAt)
	assert.Equal(t, int64(2500), col.Performance.Engagement)
	assert.Equal(t, 1, collaborations.completeCalls)
}

func TestDeclineReleasesAllocation(t *testing.T) {
	svc, campaigns, _, _ := newCollaborationFixture(t, invitedCollaboration("col1"))
	c, _ := campaigns.Get(context.Background(), "c1")
	c.AllocatedBudget = 500
	require.NoError(t, campaigns.Update(context.Background(), c))

	col, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionDecline, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationDeclined, col.Status)

	after, _ := campaigns.Get(context.Background(), "c1")
	assert.Equal(t, 0.0, after.AllocatedBudget)
}

func TestCancelNotifiesInfluencer(t *testing.T) {
	accepted := invitedCollaboration("col1")
	accepted.Status = domain.CollaborationAccepted
	svc, _, _, notifications := newCollaborationFixture(t, accepted)

	_, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionCancel, nil)
	require.NoError(t, err)
	require.Len(t, notifications.notifications, 1)
	assert.Equal(t, "i1", notifications.notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationCollaborationCancelled, notifications.notifications[0].Kind)
}

func TestStartFromInvitedRejected(t *testing.T) {
	svc, _, _, _ := newCollaborationFixture(t, invitedCollaboration("col1"))

	_, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionStart, nil)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.ElementsMatch(t, []string{"accepted", "declined", "cancelled"},
		appErr.Details["allowedTransitions"])
}

func TestCollaborationSameStatusIsNoOp(t *testing.T) {
	accepted := invitedCollaboration("col1")
	accepted.Status = domain.CollaborationAccepted
	svc, _, _, notifications := newCollaborationFixture(t, accepted)

	col, err := svc.PerformAction(context.Background(), "col1", domain.CollaborationActionAccept, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationAccepted, col.Status)
	assert.Nil(t, col.AcceptedAt)
	assert.Empty(t, notifications.notifications)
}
