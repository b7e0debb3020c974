package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/api"
	"fittrack/services/activity"
)

func (s Server) ListActivities(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		activities []activity.Activity
		err        error
	)
	if userID := c.Query("user_id"); userID != "" {
		activities, err = s.ActivityService.GetByUser(ctx, userID)
	} else {
		activities, err = s.ActivityService.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToActivities(activities))
}

func (s Server) CreateActivity(c *gin.Context) {
	var req api.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a := &activity.Activity{
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Distance:     req.Distance,
		Calories:     req.Calories,
		Notes:        req.Notes,
	}
	created, err := s.ActivityService.Create(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.ToActivity(*created))
}

func (s Server) GetActivity(c *gin.Context) {
	a, err := s.ActivityService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToActivity(*a))
}

func (s Server) DeleteActivity(c *gin.Context) {
	if err := s.ActivityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
