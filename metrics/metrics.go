package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	activityCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "activities",
		Name:      "created_total",
		Help:      "Number of activities persisted, by activity type.",
	}, []string{"activity_type"})
	leaderboardComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "leaderboard",
		Name:      "computations_total",
		Help:      "Number of dynamic leaderboard computations served.",
	})
	leaderboardRankedUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fittrack",
		Subsystem: "leaderboard",
		Name:      "ranked_users",
		Help:      "Number of users included in the most recent ranking.",
	})
)

func init() {
	prometheus.MustRegister(activityCreatedTotal, leaderboardComputedTotal, leaderboardRankedUsers)
}

// RecordActivityCreated increments the per-type activity counter.
func RecordActivityCreated(activityType string) {
	activityCreatedTotal.WithLabelValues(activityType).Inc()
}

// RecordLeaderboardComputed tracks a served ranking and its size.
func RecordLeaderboardComputed(entries int) {
	leaderboardComputedTotal.Inc()
	leaderboardRankedUsers.Set(float64(entries))
}
