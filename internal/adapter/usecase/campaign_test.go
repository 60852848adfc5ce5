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

func draftCampaign(id string) *domain.Campaign {
	now := time.Now().UTC()
	return &domain.Campaign{
		ID:          id,
		Name:        "Spring Launch",
		Status:      domain.CampaignDraft,
		TotalBudget: 10_000,
		StartDate:   now,
		EndDate:     now.AddDate(0, 1, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCampaignCreateDefaultsToDraft(t *testing.T) {
	repo := newFakeCampaignRepo()
	svc := NewCampaignService(repo)

	c, err := svc.Create(context.Background(), port.CreateCampaignInput{
		Name:        "Spring Launch",
		TotalBudget: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.NotEmpty(t, c.ID)
	assert.Contains(t, repo.campaigns, c.ID)
}

func TestCampaignCreateValidation(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo())

	_, err := svc.Create(context.Background(), port.CreateCampaignInput{Name: ""})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)

	_, err = svc.Create(context.Background(), port.CreateCampaignInput{Name: "x", TotalBudget: -1})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestCampaignCreateDuplicateName(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.createErr = port.ErrDuplicate
	svc := NewCampaignService(repo)

	_, err := svc.Create(context.Background(), port.CreateCampaignInput{Name: "Spring Launch"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestCampaignActivateSetsLaunchDate(t *testing.T) {
	repo := newFakeCampaignRepo(draftCampaign("c1"))
	svc := NewCampaignService(repo)

	c, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionActivate)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, c.Status)
	require.NotNil(t, c.LaunchDate)

	// re-activating after a pause keeps the original launch date
	_, err = svc.PerformAction(context.Background(), "c1", domain.CampaignActionPause)
	require.NoError(t, err)
	again, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionResume)
	require.NoError(t, err)
	assert.Equal(t, c.LaunchDate.Unix(), again.LaunchDate.Unix())
}

func TestCampaignCompleteSetsEndDate(t *testing.T) {
	c := draftCampaign("c1")
	c.Status = domain.CampaignActive
	repo := newFakeCampaignRepo(c)
	svc := NewCampaignService(repo)

	updated, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionComplete)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, updated.Status)
	assert.WithinDuration(t, time.Now(), updated.EndDate, time.Minute)
}

func TestCampaignActionNotFound(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo())

	_, err := svc.PerformAction(context.Background(), "missing", domain.CampaignActionActivate)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCampaignInvalidTransitionCarriesAllowedList(t *testing.T) {
	c := draftCampaign("c1")
	c.Status = domain.CampaignCompleted
	svc := NewCampaignService(newFakeCampaignRepo(c))

	_, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionActivate)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindBusinessRule, appErr.Kind)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "completed", appErr.Details["currentStatus"])
	assert.Empty(t, appErr.Details["allowedTransitions"])
}

func TestCampaignResumeOnlyFromPaused(t *testing.T) {
	c := draftCampaign("c1") // draft, not paused
	svc := NewCampaignService(newFakeCampaignRepo(c))

	_, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionResume)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "resumed")
}

func TestCampaignSameStatusActionIsNoOp(t *testing.T) {
	c := draftCampaign("c1")
	c.Status = domain.CampaignPaused
	repo := newFakeCampaignRepo(c)
	svc := NewCampaignService(repo)

	got, err := svc.PerformAction(context.Background(), "c1", domain.CampaignActionPause)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, got.Status)
}

func TestCampaignUnknownAction(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo(draftCampaign("c1")))

	_, err := svc.PerformAction(context.Background(), "c1", domain.CampaignAction("archive"))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestCampaignUpdateAppliesFields(t *testing.T) {
	repo := newFakeCampaignRepo(draftCampaign("c1"))
	svc := NewCampaignService(repo)

	name := "Renamed"
	budget := 20_000.0
	c, err := svc.Update(context.Background(), "c1", port.UpdateCampaignInput{
		Name:        &name,
		TotalBudget: &budget,
		Platforms:   []string{"youtube"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
	assert.Equal(t, 20_000.0, c.TotalBudget)
	assert.Equal(t, []string{"youtube"}, c.Platforms)
	// untouched fields survive
	assert.Equal(t, domain.CampaignDraft, c.Status)
}
