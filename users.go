package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/api"
	"fittrack/services/user"
)

func (s Server) ListUsers(c *gin.Context) {
	users, err := s.UserService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToUsers(users))
}

func (s Server) CreateUser(c *gin.Context) {
	var req api.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FitnessLevel: user.FitnessLevel(req.FitnessLevel),
	}
	created, err := s.UserService.Create(c.Request.Context(), u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.ToUser(*created))
}

func (s Server) GetUser(c *gin.Context) {
	u, err := s.UserService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToUser(*u))
}

func (s Server) UpdateUser(c *gin.Context) {
	var req api.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.UserService.Update(c.Request.Context(), c.Param("id"), user.Update{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FitnessLevel: req.FitnessLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToUser(*updated))
}

func (s Server) DeleteUser(c *gin.Context) {
	if err := s.UserService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) GetUserActivities(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := s.UserService.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	activities, err := s.ActivityService.GetByUser(ctx, u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToActivities(activities))
}

func (s Server) GetUserTeams(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := s.UserService.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	teams, err := s.TeamService.GetByMember(ctx, u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeams(teams))
}
