package domain

import "time"

// Availability describes whether an influencer can take on new work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// PlatformAudience describes an influencer's audience on one platform.
type PlatformAudience struct {
	Platform       string  `json:"platform"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
}

// Influencer represents a creator registered on the platform.
type Influencer struct {
	ID       string
	FullName string
	Handle   string
	Verified bool
	// QualityScore is an editorial 0-100 rating.
	QualityScore int
	Audiences    []PlatformAudience
	// Categories are the content themes the influencer publishes in.
	Categories   []string
	Availability Availability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalFollowers sums followers across all platforms.
func (i *Influencer) TotalFollowers() int64 {
	var total int64
	for _, a := range i.Audiences {
		total += a.Followers
	}
	return total
}

// AverageEngagementRate returns the mean engagement rate across platforms,
// 0 when the influencer has no audience data.
func (i *Influencer) AverageEngagementRate() float64 {
	if len(i.Audiences) == 0 {
		return 0
	}
	var sum float64
	for _, a := range i.Audiences {
		sum += a.EngagementRate
	}
	return sum / float64(len(i.Audiences))
}

// HasPlatform reports whether the influencer has an audience on the given
// platform.
func (i *Influencer) HasPlatform(platform string) bool {
	for _, a := range i.Audiences {
		if a.Platform == platform {
			return true
		}
	}
	return false
}
