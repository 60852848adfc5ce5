package domain

import "time"

// Campaign represents a marketing campaign run by a client brand.
// Budgets are in whole currency units.
type Campaign struct {
	ID              string
	Name            string
	Description     string
	Status          CampaignStatus
	TotalBudget     float64
	AllocatedBudget float64
	SpentBudget     float64
	// Platforms lists the social platforms the campaign targets, e.g.
	// "instagram", "tiktok". Empty means no platform requirement.
	Platforms []string
	// Keywords are the content themes used for influencer matching.
	Keywords   []string
	StartDate  time.Time
	EndDate    time.Time
	LaunchDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RemainingBudget returns the budget not yet spent.
func (c *Campaign) RemainingBudget() float64 {
	return c.TotalBudget - c.SpentBudget
}
