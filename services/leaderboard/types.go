package leaderboard

import (
	"time"

	"fittrack/api"
)

type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	AllTime Period = "all-time"
)

func (p Period) Valid() bool {
	switch p {
	case Weekly, Monthly, AllTime:
		return true
	}
	return false
}

// Snapshot is the persisted leaderboard document. The dynamic ranking path
// does not read or write it; see the list endpoint.
type Snapshot struct {
	ID           string             `json:"id" firestore:"id"`
	Period       Period             `json:"period" firestore:"period"`
	PeriodStart  time.Time          `json:"periodStart" firestore:"periodStart"`
	PeriodEnd    *time.Time         `json:"periodEnd,omitempty" firestore:"periodEnd,omitempty"`
	UserRankings []api.RankingEntry `json:"userRankings" firestore:"userRankings"`
	TeamRankings []api.RankingEntry `json:"teamRankings" firestore:"teamRankings"`
	LastUpdated  time.Time          `json:"lastUpdated" firestore:"lastUpdated"`
}
