package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/api"
	"fittrack/services/leaderboard"
)

// GetLeaderboard recomputes the ranking from users and activities on every
// call. The persisted snapshot documents are not consulted here.
func (s Server) GetLeaderboard(c *gin.Context) {
	entries, err := s.LeaderboardService.Compute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s Server) CreateLeaderboardSnapshot(c *gin.Context) {
	var req api.CreateLeaderboardSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap := &leaderboard.Snapshot{
		Period:       leaderboard.Period(req.Period),
		PeriodStart:  req.PeriodStart,
		PeriodEnd:    req.PeriodEnd,
		UserRankings: req.UserRankings,
		TeamRankings: req.TeamRankings,
	}
	created, err := s.LeaderboardService.CreateSnapshot(c.Request.Context(), snap)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toLeaderboardSnapshot(*created))
}

func (s Server) GetLeaderboardSnapshot(c *gin.Context) {
	snap, err := s.LeaderboardService.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeaderboardSnapshot(*snap))
}

func (s Server) DeleteLeaderboardSnapshot(c *gin.Context) {
	if err := s.LeaderboardService.DeleteSnapshot(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toLeaderboardSnapshot(s leaderboard.Snapshot) api.LeaderboardSnapshot {
	userRankings := s.UserRankings
	if userRankings == nil {
		userRankings = []api.RankingEntry{}
	}
	teamRankings := s.TeamRankings
	if teamRankings == nil {
		teamRankings = []api.RankingEntry{}
	}
	return api.LeaderboardSnapshot{
		ID:           s.ID,
		Period:       string(s.Period),
		PeriodStart:  s.PeriodStart,
		PeriodEnd:    s.PeriodEnd,
		UserRankings: userRankings,
		TeamRankings: teamRankings,
		LastUpdated:  s.LastUpdated,
	}
}
