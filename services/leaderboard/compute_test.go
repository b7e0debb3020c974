package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/api"
	"fittrack/services/activity"
	"fittrack/services/user"
)

func TestRank(t *testing.T) {
	users := []user.User{
		{ID: "u1", Username: "ironman"},
		{ID: "u2", Username: "batman"},
	}
	activities := []activity.Activity{
		{UserID: "u1", Points: 50},
		{UserID: "u1", Points: 30},
	}

	entries := Rank(users, activities)

	require.Len(t, entries, 1)
	assert.Equal(t, api.RankingEntry{
		ID:              "u1",
		User:            "u1",
		UserName:        "ironman",
		TotalPoints:     80,
		TotalActivities: 2,
	}, entries[0])
}

func TestRankOrdering(t *testing.T) {
	users := []user.User{
		{ID: "u1", Username: "first"},
		{ID: "u2", Username: "second"},
		{ID: "u3", Username: "third"},
	}
	activities := []activity.Activity{
		{UserID: "u1", Points: 10},
		{UserID: "u2", Points: 40},
		{UserID: "u3", Points: 25},
	}

	entries := Rank(users, activities)

	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
	}
	assert.Equal(t, "u2", entries[0].User)
	assert.Equal(t, "u3", entries[1].User)
	assert.Equal(t, "u1", entries[2].User)
}

func TestRankTieBreak(t *testing.T) {
	users := []user.User{
		{ID: "u9", Username: "late"},
		{ID: "u1", Username: "early"},
	}
	activities := []activity.Activity{
		{UserID: "u9", Points: 50},
		{UserID: "u1", Points: 50},
	}

	entries := Rank(users, activities)

	// Equal points fall back to user id ascending so output is stable.
	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].User)
	assert.Equal(t, "u9", entries[1].User)
}

func TestRankOmitsInactiveUsers(t *testing.T) {
	users := []user.User{
		{ID: "u1", Username: "active"},
		{ID: "u2", Username: "inactive"},
	}
	activities := []activity.Activity{
		{UserID: "u1", Points: 0},
	}

	entries := Rank(users, activities)

	// A zero-point activity still counts as activity.
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].User)
	assert.Equal(t, 0, entries[0].TotalPoints)
	assert.Equal(t, 1, entries[0].TotalActivities)
}

func TestRankDisplayNameFallback(t *testing.T) {
	users := []user.User{
		{ID: "u1", Email: "runner@example.com"},
		{ID: "u2"},
	}
	activities := []activity.Activity{
		{UserID: "u1", Points: 10},
		{UserID: "u2", Points: 20},
	}

	entries := Rank(users, activities)

	require.Len(t, entries, 2)
	assert.Equal(t, "Unknown User", entries[0].UserName)
	assert.Equal(t, "runner@example.com", entries[1].UserName)
}

func TestRankIgnoresUnknownActivityUsers(t *testing.T) {
	users := []user.User{
		{ID: "u1", Username: "known"},
	}
	activities := []activity.Activity{
		{UserID: "u1", Points: 10},
		{UserID: "ghost", Points: 99},
	}

	entries := Rank(users, activities)

	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].User)
	assert.Equal(t, 10, entries[0].TotalPoints)
}

func TestRankEmptyInputs(t *testing.T) {
	assert.Empty(t, Rank(nil, nil))
	assert.Empty(t, Rank([]user.User{{ID: "u1"}}, nil))
	assert.Empty(t, Rank(nil, []activity.Activity{{UserID: "u1", Points: 5}}))
}

func TestRankBoundedByUsers(t *testing.T) {
	users := []user.User{
		{ID: "u1", Username: "a"},
		{ID: "u2", Username: "b"},
	}
	activities := make([]activity.Activity, 0, 20)
	for i := 0; i < 20; i++ {
		activities = append(activities, activity.Activity{UserID: "u1", Points: i})
	}

	entries := Rank(users, activities)

	require.LessOrEqual(t, len(entries), len(users))
	assert.Equal(t, 20, entries[0].TotalActivities)
}
