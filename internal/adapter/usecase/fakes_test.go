package usecase

import (
	"context"
	"log/slog"
	"testing"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// in-memory fakes for the repository ports

type fakeCampaignRepo struct {
	campaigns map[string]*domain.Campaign
	createErr error
	updateErr error
}

func newFakeCampaignRepo(campaigns ...*domain.Campaign) *fakeCampaignRepo {
	r := &fakeCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
	for _, c := range campaigns {
		cp := *c
		r.campaigns[c.ID] = &cp
	}
	return r
}

func (r *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func (r *fakeCampaignRepo) Get(_ context.Context, id string) (*domain.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCampaignRepo) List(_ context.Context, _ port.CampaignFilter) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, c *domain.Campaign) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

type fakeInfluencerRepo struct {
	influencers map[string]*domain.Influencer
	list        []domain.Influencer
}

func newFakeInfluencerRepo(influencers ...*domain.Influencer) *fakeInfluencerRepo {
	r := &fakeInfluencerRepo{influencers: make(map[string]*domain.Influencer)}
	for _, i := range influencers {
		cp := *i
		r.influencers[i.ID] = &cp
		r.list = append(r.list, cp)
	}
	return r
}

func (r *fakeInfluencerRepo) Create(_ context.Context, i *domain.Influencer) error {
	cp := *i
	r.influencers[i.ID] = &cp
	r.list = append(r.list, cp)
	return nil
}

func (r *fakeInfluencerRepo) Get(_ context.Context, id string) (*domain.Influencer, error) {
	i, ok := r.influencers[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInfluencerRepo) List(_ context.Context, _ port.InfluencerFilter) ([]domain.Influencer, error) {
	return r.list, nil
}

func (r *fakeInfluencerRepo) Update(_ context.Context, i *domain.Influencer) error {
	cp := *i
	r.influencers[i.ID] = &cp
	return nil
}

type fakeCollaborationRepo struct {
	collaborations map[string]*domain.Collaboration
	createErr      error
	completeCalls  int
}

func newFakeCollaborationRepo(cols ...*domain.Collaboration) *fakeCollaborationRepo {
	r := &fakeCollaborationRepo{collaborations: make(map[string]*domain.Collaboration)}
	for _, c := range cols {
		cp := *c
		r.collaborations[c.ID] = &cp
	}
	return r
}

func (r *fakeCollaborationRepo) Create(_ context.Context, c *domain.Collaboration) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *c
	r.collaborations[c.ID] = &cp
	return nil
}

func (r *fakeCollaborationRepo) Get(_ context.Context, id string) (*domain.Collaboration, error) {
	c, ok := r.collaborations[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCollaborationRepo) ListByCampaign(_ context.Context, campaignID string) ([]domain.Collaboration, error) {
	var out []domain.Collaboration
	for _, c := range r.collaborations {
		if c.CampaignID == campaignID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCollaborationRepo) ListByInfluencer(_ context.Context, influencerID string) ([]domain.Collaboration, error) {
	var out []domain.Collaboration
	for _, c := range r.collaborations {
		if c.InfluencerID == influencerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCollaborationRepo) Update(_ context.Context, c *domain.Collaboration) error {
	cp := *c
	r.collaborations[c.ID] = &cp
	return nil
}

func (r *fakeCollaborationRepo) CompleteAndRecordSpend(_ context.Context, c *domain.Collaboration) error {
	r.completeCalls++
	cp := *c
	r.collaborations[c.ID] = &cp
	return nil
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func testNotifier(t *testing.T, repo *fakeNotificationRepo) *Notifier {
	t.Helper()
	return NewNotifier(repo, slog.Default())
}
