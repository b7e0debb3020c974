package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fittrack/clients/gcp"
	"fittrack/envvars"
	"fittrack/services/activity"
	"fittrack/services/leaderboard"
	"fittrack/services/team"
	"fittrack/services/user"
	"fittrack/services/workout"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}
	env := envvars.GetEvn()
	ctx := context.Background()

	db := gcp.CreateFirestore(ctx, env.ProjectID)
	defer db.Close()

	userService := user.NewService(db)
	activityService := activity.NewService(db, userService)
	teamService := team.NewService(db, userService)
	workoutService := workout.NewService(db)
	leaderboardService := leaderboard.NewService(db, userService, activityService)
	server := NewServer(userService, teamService, activityService, workoutService, leaderboardService)

	if env.WorkoutBucket != "" {
		go func() {
			if err := syncWorkoutCatalog(ctx, workoutService, env.WorkoutBucket); err != nil {
				slog.With("error", err.Error()).Error("failed to sync workout catalog")
			}
		}()
	}

	r := gin.Default()
	r.Use(cors.Default())

	registerRoutes(r, server)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:" + env.Port,
	}

	slog.Info("Starting HTTP server", "port", env.Port)
	log.Fatal(s.ListenAndServe())
}

const catalogObject = "workouts.json"

// syncWorkoutCatalog pulls the workout reference catalog from the configured
// bucket and upserts it into the workouts collection.
func syncWorkoutCatalog(ctx context.Context, service workout.Service, bucket string) error {
	var buf bytes.Buffer
	if err := gcp.DownloadObject(ctx, &buf, bucket, catalogObject); err != nil {
		return fmt.Errorf("failed to download workout catalog: %w", err)
	}

	var catalog []workout.Workout
	if err := json.NewDecoder(&buf).Decode(&catalog); err != nil {
		return fmt.Errorf("failed to parse workout catalog: %w", err)
	}

	return service.ImportCatalog(ctx, catalog)
}
