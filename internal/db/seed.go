package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of influencers, a few campaigns in
// different lifecycle stages and collaborations spread across statuses so
// the analytics endpoints return something interesting out of the box.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	platforms := []string{"instagram", "tiktok", "youtube"}
	categories := [][]string{
		{"fashion", "lifestyle"},
		{"tech", "gaming"},
		{"fitness", "nutrition"},
		{"travel", "photography"},
	}

	influencerIDs := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		id := uuid.NewString()
		influencerIDs = append(influencerIDs, id)
		audiences := []map[string]any{
			{
				"platform":        platforms[r.Intn(len(platforms))],
				"followers":       int64(10_000 + r.Intn(900_000)),
				"engagement_rate": 1 + r.Float64()*6,
			},
		}
		audJSON, _ := json.Marshal(audiences)
		catJSON, _ := json.Marshal(categories[r.Intn(len(categories))])
		_, err := pool.Exec(ctx, `INSERT INTO influencers
(id, full_name, handle, verified, quality_score, audiences, categories, availability, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,'available',$8,$8) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("Demo Creator %d", i), fmt.Sprintf("creator_%d", i),
			i%3 == 0, 40+r.Intn(60), audJSON, catJSON, now)
		if err != nil {
			return err
		}
	}

	statuses := []string{"draft", "active", "paused"}
	for i := 1; i <= 3; i++ {
		campaignID := uuid.NewString()
		platJSON, _ := json.Marshal([]string{"instagram", "tiktok"})
		kwJSON, _ := json.Marshal([]string{"fashion", "lifestyle"})
		totalBudget := float64(5_000 * i)
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
(id, name, description, status, total_budget, allocated_budget, spent_budget,
 platforms, keywords, start_date, end_date, launch_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,0,0,$6,$7,$8,$9,NULL,$10,$10) ON CONFLICT DO NOTHING`,
			campaignID, fmt.Sprintf("Demo Campaign %d", i), "seeded demo campaign",
			statuses[i-1], totalBudget, platJSON, kwJSON,
			now.AddDate(0, 0, -20), now.AddDate(0, 1, 0), now)
		if err != nil {
			return err
		}

		// a few collaborations per campaign, accepted within the trend window
		for j := 0; j < 4; j++ {
			influencerID := influencerIDs[r.Intn(len(influencerIDs))]
			status := []string{"invited", "accepted", "active", "completed"}[j]
			invitedAt := now.AddDate(0, 0, -15+j)
			var acceptedAt, completedAt *time.Time
			perf := map[string]int64{}
			if status != "invited" {
				t := invitedAt.Add(24 * time.Hour)
				acceptedAt = &t
			}
			if status == "completed" {
				t := invitedAt.Add(5 * 24 * time.Hour)
				completedAt = &t
				perf = map[string]int64{
					"reach":       int64(20_000 + r.Intn(200_000)),
					"engagement":  int64(1_000 + r.Intn(20_000)),
					"impressions": int64(50_000 + r.Intn(400_000)),
					"likes":       int64(500 + r.Intn(10_000)),
					"comments":    int64(50 + r.Intn(1_000)),
					"shares":      int64(20 + r.Intn(500)),
				}
			}
			perfJSON, _ := json.Marshal(perf)
			_, err = pool.Exec(ctx, `INSERT INTO collaborations
(id, campaign_id, influencer_id, status, agreed_payment, performance, invited_at, accepted_at, completed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, influencerID, status,
				float64(200+r.Intn(800)), perfJSON, invitedAt, acceptedAt, completedAt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
