package main

import "github.com/gin-gonic/gin"

func registerRoutes(r *gin.Engine, s Server) {
	r.GET("/ping", s.GetPing)

	g := r.Group("/api")

	users := g.Group("/users")
	users.GET("", s.ListUsers)
	users.POST("", s.CreateUser)
	users.GET("/:id", s.GetUser)
	users.PUT("/:id", s.UpdateUser)
	users.DELETE("/:id", s.DeleteUser)
	users.GET("/:id/activities", s.GetUserActivities)
	users.GET("/:id/teams", s.GetUserTeams)

	teams := g.Group("/teams")
	teams.GET("", s.ListTeams)
	teams.POST("", s.CreateTeam)
	teams.GET("/:id", s.GetTeam)
	teams.PUT("/:id", s.UpdateTeam)
	teams.DELETE("/:id", s.DeleteTeam)
	teams.POST("/:id/add_member", s.AddTeamMember)
	teams.POST("/:id/remove_member", s.RemoveTeamMember)

	activities := g.Group("/activities")
	activities.GET("", s.ListActivities)
	activities.POST("", s.CreateActivity)
	activities.GET("/:id", s.GetActivity)
	activities.DELETE("/:id", s.DeleteActivity)

	leaderboard := g.Group("/leaderboard")
	leaderboard.GET("", s.GetLeaderboard)
	leaderboard.POST("", s.CreateLeaderboardSnapshot)
	leaderboard.GET("/:id", s.GetLeaderboardSnapshot)
	leaderboard.DELETE("/:id", s.DeleteLeaderboardSnapshot)

	workouts := g.Group("/workouts")
	workouts.GET("", s.ListWorkouts)
	workouts.POST("", s.CreateWorkout)
	workouts.GET("/recommended", s.RecommendedWorkouts)
	workouts.GET("/:id", s.GetWorkout)
	workouts.PUT("/:id", s.UpdateWorkout)
	workouts.DELETE("/:id", s.DeleteWorkout)
}
