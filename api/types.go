package api

import "time"

// User is the wire representation of a user document.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FitnessLevel string    `json:"fitness_level"`
	TotalPoints  int       `json:"total_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FitnessLevel string `json:"fitness_level"`
}

type UpdateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	FitnessLevel *string `json:"fitness_level"`
}

// Team is the wire representation of a team document.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CaptainID   string    `json:"captain_id"`
	MemberIDs   []string  `json:"member_ids"`
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTeamRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CaptainID   string   `json:"captain_id" binding:"required"`
	MemberIDs   []string `json:"member_ids"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CaptainID   *string `json:"captain_id"`
}

// MembershipRequest is the body for the add_member and remove_member actions.
type MembershipRequest struct {
	UserID string `json:"user_id"`
}

// Activity is the wire representation of an activity document.
type Activity struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Duration     int       `json:"duration"`
	Distance     *float64  `json:"distance,omitempty"`
	Calories     *int      `json:"calories,omitempty"`
	Points       int       `json:"points"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// Points is read-only on the wire and defaults to zero on create.
type CreateActivityRequest struct {
	UserID       string   `json:"user_id" binding:"required"`
	ActivityType string   `json:"activity_type" binding:"required"`
	Duration     int      `json:"duration" binding:"required,gt=0"`
	Distance     *float64 `json:"distance"`
	Calories     *int     `json:"calories"`
	Notes        string   `json:"notes"`
}

// RankingEntry is one row of the computed leaderboard, keyed by user.
type RankingEntry struct {
	ID              string `json:"id" firestore:"id"`
	User            string `json:"user" firestore:"user"`
	UserName        string `json:"user_name" firestore:"userName"`
	TotalPoints     int    `json:"total_points" firestore:"totalPoints"`
	TotalActivities int    `json:"total_activities" firestore:"totalActivities"`
}

// LeaderboardSnapshot is the persisted leaderboard document. The list endpoint
// bypasses it and recomputes rankings from activities on every call.
type LeaderboardSnapshot struct {
	ID           string         `json:"id"`
	Period       string         `json:"period"`
	PeriodStart  time.Time      `json:"period_start"`
	PeriodEnd    *time.Time     `json:"period_end,omitempty"`
	UserRankings []RankingEntry `json:"user_rankings"`
	TeamRankings []RankingEntry `json:"team_rankings"`
	LastUpdated  time.Time      `json:"last_updated"`
}

type CreateLeaderboardSnapshotRequest struct {
	Period       string         `json:"period" binding:"required"`
	PeriodStart  time.Time      `json:"period_start" binding:"required"`
	PeriodEnd    *time.Time     `json:"period_end"`
	UserRankings []RankingEntry `json:"user_rankings"`
	TeamRankings []RankingEntry `json:"team_rankings"`
}

// Exercise is a single step of a workout plan.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     *int   `json:"reps,omitempty"`
	Duration *int   `json:"duration,omitempty"`
}

// Workout is the wire representation of a workout document.
type Workout struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	DifficultyLevel     string     `json:"difficulty_level"`
	TargetFitnessLevels []string   `json:"target_fitness_levels"`
	Exercises           []Exercise `json:"exercises"`
	EstimatedDuration   int        `json:"estimated_duration"`
	EstimatedCalories   int        `json:"estimated_calories"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type CreateWorkoutRequest struct {
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	DifficultyLevel     string     `json:"difficulty_level" binding:"required"`
	TargetFitnessLevels []string   `json:"target_fitness_levels"`
	Exercises           []Exercise `json:"exercises"`
	EstimatedDuration   int        `json:"estimated_duration" binding:"required,gt=0"`
	EstimatedCalories   int        `json:"estimated_calories"`
}

type UpdateWorkoutRequest struct {
	Title               *string     `json:"title"`
	Description         *string     `json:"description"`
	DifficultyLevel     *string     `json:"difficulty_level"`
	TargetFitnessLevels *[]string   `json:"target_fitness_levels"`
	Exercises           *[]Exercise `json:"exercises"`
	EstimatedDuration   *int        `json:"estimated_duration"`
	EstimatedCalories   *int        `json:"estimated_calories"`
}
