package domain

import "time"

// PerformanceStats holds the engagement numbers reported for a completed
// collaboration. Absent fields stay zero so the analytics arithmetic never
// has to guard against missing values.
type PerformanceStats struct {
	Reach       int64 `json:"reach"`
	Engagement  int64 `json:"engagement"`
	Impressions int64 `json:"impressions"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
}

// Collaboration is the join entity for one influencer's engagement on one
// campaign. It starts in the invited status and carries the timestamps of
// the lifecycle steps it has passed through.
type Collaboration struct {
	ID            string
	CampaignID    string
	InfluencerID  string
	Status        CollaborationStatus
	AgreedPayment float64
	Performance   PerformanceStats
	InvitedAt     time.Time
	AcceptedAt    *time.Time
	CompletedAt   *time.Time
}
