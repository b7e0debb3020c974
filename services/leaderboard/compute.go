package leaderboard

import (
	"sort"

	"fittrack/api"
	"fittrack/services/activity"
	"fittrack/services/user"
)

const unknownUser = "Unknown User"

// Rank builds the ranking from the full set of users and activities.
// Activities are matched to users by string equality on the user id; totals
// are summed per user and the result is ordered by total points descending.
// Ties are broken by user id ascending so repeated calls over the same data
// return the same order. Users with no activity and zero points are omitted.
func Rank(users []user.User, activities []activity.Activity) []api.RankingEntry {
	pointsByUser := make(map[string]int)
	countByUser := make(map[string]int)
	for _, a := range activities {
		pointsByUser[a.UserID] += a.Points
		countByUser[a.UserID]++
	}

	entries := make([]api.RankingEntry, 0, len(users))
	for _, u := range users {
		totalPoints := pointsByUser[u.ID]
		totalActivities := countByUser[u.ID]
		if totalActivities == 0 && totalPoints <= 0 {
			continue
		}
		entries = append(entries, api.RankingEntry{
			ID:              u.ID,
			User:            u.ID,
			UserName:        displayName(u),
			TotalPoints:     totalPoints,
			TotalActivities: totalActivities,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].User < entries[j].User
	})
	return entries
}

// displayName degrades from username to email to a placeholder, never failing.
func displayName(u user.User) string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return unknownUser
}
