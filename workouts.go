package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/api"
	"fittrack/services/workout"
)

func (s Server) ListWorkouts(c *gin.Context) {
	workouts, err := s.WorkoutService.GetAll(c.Request.Context(), c.Query("difficulty_level"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToWorkouts(workouts))
}

func (s Server) RecommendedWorkouts(c *gin.Context) {
	level := c.DefaultQuery("fitness_level", string(workout.Beginner))
	workouts, err := s.WorkoutService.Recommended(c.Request.Context(), level)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToWorkouts(workouts))
}

func (s Server) CreateWorkout(c *gin.Context) {
	var req api.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w := &workout.Workout{
		Title:               req.Title,
		Description:         req.Description,
		DifficultyLevel:     workout.DifficultyLevel(req.DifficultyLevel),
		TargetFitnessLevels: req.TargetFitnessLevels,
		Exercises:           toExercises(req.Exercises),
		EstimatedDuration:   req.EstimatedDuration,
		EstimatedCalories:   req.EstimatedCalories,
	}
	created, err := s.WorkoutService.Create(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.ToWorkout(*created))
}

func (s Server) GetWorkout(c *gin.Context) {
	w, err := s.WorkoutService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToWorkout(*w))
}

func (s Server) UpdateWorkout(c *gin.Context) {
	var req api.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update := workout.Update{
		Title:             req.Title,
		Description:       req.Description,
		DifficultyLevel:   req.DifficultyLevel,
		EstimatedDuration: req.EstimatedDuration,
		EstimatedCalories: req.EstimatedCalories,
	}
	update.TargetFitnessLevels = req.TargetFitnessLevels
	if req.Exercises != nil {
		exercises := toExercises(*req.Exercises)
		update.Exercises = &exercises
	}
	updated, err := s.WorkoutService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToWorkout(*updated))
}

func (s Server) DeleteWorkout(c *gin.Context) {
	if err := s.WorkoutService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toExercises(in []api.Exercise) []workout.Exercise {
	result := make([]workout.Exercise, 0, len(in))
	for _, e := range in {
		result = append(result, workout.Exercise{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Duration: e.Duration,
		})
	}
	return result
}
