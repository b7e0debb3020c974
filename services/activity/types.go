package activity

import "time"

type Activity struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"userId" firestore:"userId"`
	ActivityType string    `json:"activityType" firestore:"activityType"`
	Duration     int       `json:"duration" firestore:"duration"`
	Distance     *float64  `json:"distance,omitempty" firestore:"distance,omitempty"`
	Calories     *int      `json:"calories,omitempty" firestore:"calories,omitempty"`
	Points       int       `json:"points" firestore:"points"`
	Notes        string    `json:"notes" firestore:"notes"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}
