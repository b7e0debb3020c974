package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/api"
	"fittrack/services/activity"
	"fittrack/services/leaderboard"
	"fittrack/services/team"
	"fittrack/services/user"
)

type mockUserService struct {
	user.Service
	get func(ctx context.Context, ID string) (*user.User, error)
}

func (m *mockUserService) Get(ctx context.Context, ID string) (*user.User, error) {
	return m.get(ctx, ID)
}

type mockTeamService struct {
	team.Service
	addMember    func(ctx context.Context, teamID, userID string) (*team.Team, error)
	removeMember func(ctx context.Context, teamID, userID string) (*team.Team, error)
}

func (m *mockTeamService) AddMember(ctx context.Context, teamID, userID string) (*team.Team, error) {
	return m.addMember(ctx, teamID, userID)
}

func (m *mockTeamService) RemoveMember(ctx context.Context, teamID, userID string) (*team.Team, error) {
	return m.removeMember(ctx, teamID, userID)
}

type mockActivityService struct {
	activity.Service
	create func(ctx context.Context, a *activity.Activity) (*activity.Activity, error)
}

func (m *mockActivityService) Create(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	return m.create(ctx, a)
}

type mockLeaderboardService struct {
	leaderboard.Service
	compute func(ctx context.Context) ([]api.RankingEntry, error)
}

func (m *mockLeaderboardService) Compute(ctx context.Context) ([]api.RankingEntry, error) {
	return m.compute(ctx)
}

func newTestRouter(s Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, s)
	return r
}

func TestGetLeaderboard(t *testing.T) {
	s := Server{
		LeaderboardService: &mockLeaderboardService{
			compute: func(ctx context.Context) ([]api.RankingEntry, error) {
				return []api.RankingEntry{
					{ID: "u1", User: "u1", UserName: "ironman", TotalPoints: 80, TotalActivities: 2},
					{ID: "u2", User: "u2", UserName: "batman", TotalPoints: 40, TotalActivities: 1},
				}, nil
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "ironman", entries[0]["user_name"])
	assert.Equal(t, float64(80), entries[0]["total_points"])
	assert.Equal(t, float64(2), entries[0]["total_activities"])
	assert.Equal(t, "batman", entries[1]["user_name"])
}

func TestGetLeaderboardStoreFailure(t *testing.T) {
	s := Server{
		LeaderboardService: &mockLeaderboardService{
			compute: func(ctx context.Context) ([]api.RankingEntry, error) {
				return nil, errors.New("store unavailable")
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestAddTeamMemberMissingUserID(t *testing.T) {
	s := Server{
		TeamService: &mockTeamService{
			addMember: func(ctx context.Context, teamID, userID string) (*team.Team, error) {
				if userID == "" {
					return nil, team.MissingUserID
				}
				t.Fatalf("unexpected call with user id %q", userID)
				return nil, nil
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams/t1/add_member", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "user_id is required"}`, w.Body.String())
}

func TestAddTeamMember(t *testing.T) {
	s := Server{
		TeamService: &mockTeamService{
			addMember: func(ctx context.Context, teamID, userID string) (*team.Team, error) {
				assert.Equal(t, "t1", teamID)
				return &team.Team{ID: teamID, Name: "Team Marvel", MemberIDs: []string{"a", userID}}, nil
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams/t1/add_member", bytes.NewBufferString(`{"user_id":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "c"}, resp.MemberIDs)
}

func TestRemoveTeamMemberAbsentIsNoop(t *testing.T) {
	s := Server{
		TeamService: &mockTeamService{
			removeMember: func(ctx context.Context, teamID, userID string) (*team.Team, error) {
				// Absent members are a no-op, not an error.
				return &team.Team{ID: teamID, MemberIDs: []string{"a", "b"}}, nil
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams/t1/remove_member", bytes.NewBufferString(`{"user_id":"z"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.MemberIDs)
}

func TestGetUserNotFound(t *testing.T) {
	s := Server{
		UserService: &mockUserService{
			get: func(ctx context.Context, ID string) (*user.User, error) {
				return nil, user.NotFound
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "user not found"}`, w.Body.String())
}

func TestCreateUserMissingEmail(t *testing.T) {
	r := newTestRouter(Server{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"ironman"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateActivityRejectsZeroDuration(t *testing.T) {
	r := newTestRouter(Server{})

	w := httptest.NewRecorder()
	body := `{"user_id":"u1","activity_type":"running","duration":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateActivityUnknownUser(t *testing.T) {
	s := Server{
		ActivityService: &mockActivityService{
			create: func(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
				return nil, user.NotFound
			},
		},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	body := `{"user_id":"ghost","activity_type":"running","duration":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "user not found"}`, w.Body.String())
}
