package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/api"
	"fittrack/services/team"
)

func (s Server) ListTeams(c *gin.Context) {
	teams, err := s.TeamService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeams(teams))
}

func (s Server) CreateTeam(c *gin.Context) {
	var req api.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &team.Team{
		Name:        req.Name,
		Description: req.Description,
		CaptainID:   req.CaptainID,
		MemberIDs:   req.MemberIDs,
	}
	created, err := s.TeamService.Create(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.ToTeam(*created))
}

func (s Server) GetTeam(c *gin.Context) {
	t, err := s.TeamService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeam(*t))
}

func (s Server) UpdateTeam(c *gin.Context) {
	var req api.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.TeamService.Update(c.Request.Context(), c.Param("id"), team.Update{
		Name:        req.Name,
		Description: req.Description,
		CaptainID:   req.CaptainID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeam(*updated))
}

func (s Server) DeleteTeam(c *gin.Context) {
	if err := s.TeamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) AddTeamMember(c *gin.Context) {
	var req api.MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	t, err := s.TeamService.AddMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeam(*t))
}

func (s Server) RemoveTeamMember(c *gin.Context) {
	var req api.MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	t, err := s.TeamService.RemoveMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ToTeam(*t))
}
