package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/services/activity"
	"fittrack/services/leaderboard"
	"fittrack/services/team"
	"fittrack/services/user"
	"fittrack/services/workout"
)

type Server struct {
	UserService        user.Service
	TeamService        team.Service
	ActivityService    activity.Service
	WorkoutService     workout.Service
	LeaderboardService leaderboard.Service
}

func NewServer(
	userService user.Service,
	teamService team.Service,
	activityService activity.Service,
	workoutService workout.Service,
	leaderboardService leaderboard.Service,
) Server {
	return Server{
		UserService:        userService,
		TeamService:        teamService,
		ActivityService:    activityService,
		WorkoutService:     workoutService,
		LeaderboardService: leaderboardService,
	}
}

func (s Server) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ping": "pong"})
}

// respondError maps service errors onto HTTP statuses. Anything outside the
// known sentinels is a store fault and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, team.MissingUserID),
		errors.Is(err, activity.InvalidDuration),
		errors.Is(err, user.InvalidFitnessLevel),
		errors.Is(err, workout.InvalidDifficulty),
		errors.Is(err, leaderboard.InvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.AlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.NotFound),
		errors.Is(err, team.NotFound),
		errors.Is(err, activity.NotFound),
		errors.Is(err, workout.NotFound),
		errors.Is(err, leaderboard.NotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.With("error", err.Error()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
